package validate

import (
	"strings"
	"testing"
)

func TestPhrases_Valid(t *testing.T) {
	result := Phrases([]string{"fever", "headache", "chills"})
	if !result.IsValid {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
}

func TestPhrases_Empty(t *testing.T) {
	result := Phrases(nil)
	if result.IsValid {
		t.Fatal("expected invalid for empty input")
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %v", result.Errors)
	}
}

func TestPhrases_TooMany(t *testing.T) {
	phrases := make([]string, 12)
	for i := range phrases {
		phrases[i] = "symptom"
	}

	result := Phrases(phrases)
	if result.IsValid {
		t.Fatal("expected invalid for 12 phrases")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "maximum 10 symptoms") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a maximum-10 error, got %v", result.Errors)
	}
}

func TestPhrases_TooLong(t *testing.T) {
	result := Phrases([]string{strings.Repeat("a", 201)})
	if result.IsValid {
		t.Fatal("expected invalid for over-long phrase")
	}
}

func TestPhrases_BoundaryLength(t *testing.T) {
	result := Phrases([]string{strings.Repeat("a", 200)})
	if !result.IsValid {
		t.Errorf("200-character phrase should be accepted, got %v", result.Errors)
	}
}

func TestPhrases_NonText(t *testing.T) {
	result := Phrases([]string{"fever", "   ", ""})
	if result.IsValid {
		t.Fatal("expected invalid for blank entries")
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 errors (one per blank entry), got %v", result.Errors)
	}
}

func TestPhrases_BannedContent(t *testing.T) {
	result := Phrases([]string{"fever", "PRESCRIBE ME antibiotics"})
	if result.IsValid {
		t.Fatal("expected invalid for banned content")
	}
	if !strings.Contains(result.Errors[0], "contact a doctor") {
		t.Errorf("policy error should point to professional help, got %q", result.Errors[0])
	}
}

func TestPhrases_AccumulatesAllErrors(t *testing.T) {
	phrases := make([]string, 11)
	for i := range phrases {
		phrases[i] = "cough"
	}
	phrases[0] = strings.Repeat("x", 250)
	phrases[1] = "how to overdose on paracetamol"

	result := Phrases(phrases)
	if result.IsValid {
		t.Fatal("expected invalid")
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 accumulated errors (count, length, policy), got %v", result.Errors)
	}
}
