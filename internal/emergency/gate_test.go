package emergency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/swasthyabot/swasthya/internal/cache"
	"github.com/swasthyabot/swasthya/internal/model"
)

// mockSource implements KeywordSource for testing
type mockSource struct {
	keyword *model.EmergencyKeyword
	err     error
	calls   int
}

func (m *mockSource) Lookup(ctx context.Context, text, language string) (*model.EmergencyKeyword, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.keyword, nil
}

func TestGate_Check_Critical(t *testing.T) {
	gate := NewGate()

	tests := []struct {
		name     string
		text     string
		language string
	}{
		{"english_chest_pain", "I have severe CHEST PAIN since morning", "en"},
		{"english_breathing", "my father is not breathing", "en"},
		{"hindi_native", "मुझे सीने में दर्द हो रहा है", "hi"},
		{"telugu_native", "నాకు గుండె నొప్పి వస్తోంది", "te"},
		{"unlisted_language_falls_back_to_english", "heart attack ho raha hai", "sat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := gate.Check(context.Background(), tt.text, tt.language)
			if !result.IsEmergency {
				t.Fatalf("expected emergency for %q", tt.text)
			}
			if result.Severity != model.EmergencyCritical {
				t.Errorf("expected critical severity, got %q", result.Severity)
			}
			if result.Response == "" {
				t.Error("expected non-empty response text")
			}
		})
	}
}

func TestGate_Check_HighRisk(t *testing.T) {
	gate := NewGate()

	result := gate.Check(context.Background(), "I have a very high fever and body ache", "en")
	if !result.IsEmergency {
		t.Fatal("expected emergency")
	}
	if result.Severity != model.EmergencyHigh {
		t.Errorf("expected high severity, got %q", result.Severity)
	}
}

func TestGate_Check_CriticalTakesPrecedence(t *testing.T) {
	gate := NewGate()

	// Text contains both a high-risk and a critical keyword.
	result := gate.Check(context.Background(), "high fever and chest pain", "en")
	if result.Severity != model.EmergencyCritical {
		t.Errorf("critical must win over high-risk, got %q", result.Severity)
	}
}

func TestGate_Check_NoMatch(t *testing.T) {
	gate := NewGate()

	result := gate.Check(context.Background(), "mild headache and runny nose", "en")
	if result.IsEmergency {
		t.Errorf("unexpected emergency: matched %q", result.MatchedKeyword)
	}
}

func TestGate_Check_LocalizedResponse(t *testing.T) {
	gate := NewGate()

	result := gate.Check(context.Background(), "सीने में दर्द", "hi")
	if result.Response != criticalResponses["hi"] {
		t.Errorf("expected Hindi response, got %q", result.Response)
	}

	// Language without a dedicated response falls back to English.
	result = gate.Check(context.Background(), "chest pain", "sat")
	if result.Response != criticalResponses["en"] {
		t.Errorf("expected English fallback response, got %q", result.Response)
	}
}

func TestGate_Check_DynamicSourceMatch(t *testing.T) {
	source := &mockSource{keyword: &model.EmergencyKeyword{
		Language: "en",
		Keyword:  "rabid dog bite",
		Tier:     model.EmergencyHigh,
		Response: "Go to a clinic for anti-rabies treatment today.",
	}}
	gate := NewGateWithSource(source, time.Second)

	result := gate.Check(context.Background(), "a rabid dog bite on my leg", "en")
	if !result.IsEmergency {
		t.Fatal("expected emergency from dynamic source")
	}
	if result.Severity != model.EmergencyHigh {
		t.Errorf("expected high severity, got %q", result.Severity)
	}
	if result.Response != source.keyword.Response {
		t.Errorf("expected dynamic response, got %q", result.Response)
	}
}

func TestGate_Check_DynamicSourceFailureIsNoMatch(t *testing.T) {
	source := &mockSource{err: errors.New("keyword service down")}
	gate := NewGateWithSource(source, time.Second)

	result := gate.Check(context.Background(), "mild cough", "en")
	if result.IsEmergency {
		t.Error("dynamic source failure must not produce an emergency")
	}
}

func TestGate_Check_StaticTiersIgnoreDynamicFailure(t *testing.T) {
	// Even with a broken dynamic source, static critical keywords work.
	source := &mockSource{err: errors.New("down")}
	gate := NewGateWithSource(source, time.Second)

	result := gate.Check(context.Background(), "he is unconscious", "en")
	if !result.IsEmergency || result.Severity != model.EmergencyCritical {
		t.Error("static critical detection must not depend on the dynamic source")
	}
	if source.calls != 0 {
		t.Error("dynamic source must not be consulted when a static tier matches")
	}
}

func TestCachedSource_Lookup(t *testing.T) {
	source := &mockSource{keyword: &model.EmergencyKeyword{
		Keyword: "scorpion sting",
		Tier:    model.EmergencyCritical,
	}}
	cached := NewCachedSource(source, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 3; i++ {
		keyword, err := cached.Lookup(context.Background(), "scorpion sting on foot", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if keyword == nil || keyword.Keyword != "scorpion sting" {
			t.Fatalf("unexpected keyword: %+v", keyword)
		}
	}

	if source.calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", source.calls)
	}
}

func TestCachedSource_Lookup_CachesMisses(t *testing.T) {
	source := &mockSource{}
	cached := NewCachedSource(source, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 3; i++ {
		keyword, err := cached.Lookup(context.Background(), "just a cold", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if keyword != nil {
			t.Fatalf("expected no keyword, got %+v", keyword)
		}
	}

	if source.calls != 1 {
		t.Errorf("expected 1 upstream call for cached miss, got %d", source.calls)
	}
}
