package emergency

import (
	"context"
	"strings"
	"time"

	"github.com/swasthyabot/swasthya/internal/model"
)

// Result is the outcome of an emergency check
type Result struct {
	IsEmergency    bool
	Severity       model.EmergencySeverity
	MatchedKeyword string
	Response       string
}

// KeywordSource is an optional external source of emergency keywords
// (e.g., a keyword table maintained by health workers). A failing source
// must never fail the check.
type KeywordSource interface {
	Lookup(ctx context.Context, text, language string) (*model.EmergencyKeyword, error)
}

// Gate scans normalized text against tiered keyword sets and
// short-circuits all downstream triage on a match. Critical keywords
// always take precedence over high-risk ones.
type Gate struct {
	dynamic KeywordSource
	timeout time.Duration
}

// NewGate creates a gate with only the static keyword tiers
func NewGate() *Gate {
	return &Gate{timeout: 3 * time.Second}
}

// NewGateWithSource creates a gate that additionally consults a dynamic
// keyword source after the static tiers find nothing
func NewGateWithSource(source KeywordSource, timeout time.Duration) *Gate {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Gate{dynamic: source, timeout: timeout}
}

// Check scans text for emergency keywords in the given language.
// First match wins within a tier; scanning never continues looking for a
// "better" match once one is found.
func (g *Gate) Check(ctx context.Context, text, language string) Result {
	normalized := normalize(text)

	if keyword, ok := matchFirst(normalized, keywordsFor(criticalKeywords, language)); ok {
		return Result{
			IsEmergency:    true,
			Severity:       model.EmergencyCritical,
			MatchedKeyword: keyword,
			Response:       criticalResponses.Get(language),
		}
	}

	if keyword, ok := matchFirst(normalized, keywordsFor(highRiskKeywords, language)); ok {
		return Result{
			IsEmergency:    true,
			Severity:       model.EmergencyHigh,
			MatchedKeyword: keyword,
			Response:       highRiskResponses.Get(language),
		}
	}

	if g.dynamic != nil {
		if result, ok := g.checkDynamic(ctx, normalized, language); ok {
			return result
		}
	}

	return Result{IsEmergency: false}
}

// checkDynamic consults the external keyword source. Any failure is
// treated as "no match": the static tiers already cover the critical
// case, so an infra failure must not block or fabricate an emergency.
func (g *Gate) checkDynamic(ctx context.Context, normalized, language string) (Result, bool) {
	lookupCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	keyword, err := g.dynamic.Lookup(lookupCtx, normalized, language)
	if err != nil || keyword == nil {
		return Result{}, false
	}

	needle := normalize(keyword.Keyword)
	if needle == "" || !strings.Contains(normalized, needle) {
		return Result{}, false
	}

	severity := keyword.Tier
	if severity != model.EmergencyCritical {
		severity = model.EmergencyHigh
	}

	response := keyword.Response
	if response == "" {
		if severity == model.EmergencyCritical {
			response = criticalResponses.Get(language)
		} else {
			response = highRiskResponses.Get(language)
		}
	}

	return Result{
		IsEmergency:    true,
		Severity:       severity,
		MatchedKeyword: keyword.Keyword,
		Response:       response,
	}, true
}

func matchFirst(normalized string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		if strings.Contains(normalized, keyword) {
			return keyword, true
		}
	}
	return "", false
}

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
