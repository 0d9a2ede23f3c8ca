package compose

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/swasthyabot/swasthya/internal/llm"
	"github.com/swasthyabot/swasthya/internal/model"
	"github.com/swasthyabot/swasthya/internal/worker"
)

// Composer assembles the final advisory payload from matched symptoms
// and ranked diseases. The narrative may come from a generation
// provider; when that is nil, throttled, or failing, a fixed
// per-language fallback is used instead. The composer never returns an
// empty advisory, and every payload gets the localized safety
// disclaimer appended as the final step.
type Composer struct {
	generator llm.Provider         // nil = generation disabled
	limiter   *worker.KeyedLimiter // Throttles outbound generation calls
	timeout   time.Duration
	maxWords  int
}

// NewComposer creates a composer. generator and limiter may be nil.
func NewComposer(generator llm.Provider, limiter *worker.KeyedLimiter, timeout time.Duration, maxWords int) *Composer {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if maxWords <= 0 {
		maxWords = 120
	}
	return &Composer{
		generator: generator,
		limiter:   limiter,
		timeout:   timeout,
		maxWords:  maxWords,
	}
}

// Compose builds the result payload for a completed triage request
func (c *Composer) Compose(ctx context.Context, req *model.TriageRequest) model.AdvisoryPayload {
	language := req.Language

	symptoms := make([]model.SymptomSummary, 0, len(req.Matched))
	for _, s := range req.Matched {
		symptoms = append(symptoms, model.SymptomSummary{
			ID:       s.ID,
			Name:     s.LocalName(language),
			Severity: s.Severity.String(),
		})
	}

	diseases := make([]model.DiseaseSuggestion, 0, len(req.Ranked))
	for _, r := range req.Ranked {
		diseases = append(diseases, model.DiseaseSuggestion{
			ID:             r.Disease.ID,
			Name:           r.Disease.Names.Get(language),
			Confidence:     r.Confidence,
			Severity:       r.Disease.Severity.String(),
			WhenToSeekHelp: r.Disease.WhenToSeekHelp.Get(language),
		})
	}

	narrative := c.narrative(ctx, req)
	advisory := appendDisclaimer(narrative, language)

	return model.AdvisoryPayload{
		Type:              model.PayloadResult,
		MatchedSymptoms:   symptoms,
		SuggestedDiseases: diseases,
		AdvisoryText:      advisory,
	}
}

// narrative produces the free-text advisory. Generation is best-effort
// with a bounded timeout; any failure substitutes the fixed fallback.
func (c *Composer) narrative(ctx context.Context, req *model.TriageRequest) string {
	if c.generator == nil {
		return FallbackAdvisory(req.Language)
	}

	if c.limiter != nil && !c.limiter.Allow(c.generator.Name()) {
		// Over the outbound budget; the fallback is always ready.
		return FallbackAdvisory(req.Language)
	}

	genCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.generator.Generate(genCtx, llm.GenerateRequest{
		Prompt: c.buildPrompt(req),
	})
	if err != nil || resp == nil || strings.TrimSpace(resp.Text) == "" {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: advisory generation failed: %v\n", err)
		}
		return FallbackAdvisory(req.Language)
	}

	return strings.TrimSpace(resp.Text)
}

// buildPrompt constructs the constrained generation prompt: strict word
// budget, mandatory opening disclaimer, mandatory emergency
// call-to-action, response language pinned to the user's.
func (c *Composer) buildPrompt(req *model.TriageRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Write a short health advisory in language code %q.

STRICT RULES:
1. At most %d words.
2. Open with a sentence saying this is general information, not a diagnosis.
3. Do not name or recommend any medicine or prescription.
4. End with: if symptoms become severe, call 108 or go to a hospital.
5. Plain, simple words a villager can understand.

The user reported these symptoms:
`, req.Language, c.maxWords)

	for _, s := range req.Matched {
		fmt.Fprintf(&b, "- %s (severity: %s)\n", s.LocalName(req.Language), s.Severity)
	}

	b.WriteString("\nPossible conditions, most likely first:\n")
	for _, r := range req.Ranked {
		fmt.Fprintf(&b, "- %s (confidence %.0f%%): %s\n",
			r.Disease.Names.Get(req.Language), r.Confidence*100,
			r.Disease.WhenToSeekHelp.Get(req.Language))
	}

	return b.String()
}

// appendDisclaimer appends the localized safety disclaimer
// unconditionally. Duplication with the narrative is acceptable;
// omission is not.
func appendDisclaimer(narrative, language string) string {
	narrative = strings.TrimSpace(narrative)
	if narrative == "" {
		narrative = FallbackAdvisory(language)
	}
	return narrative + "\n\n" + Disclaimer(language)
}
