package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxPhrases is the hard cap on symptom phrases per request
	MaxPhrases = 10
	// MaxPhraseLength is the longest accepted phrase, in characters
	MaxPhraseLength = 200
	// MinPhraseLength is the shortest accepted phrase, in characters
	MinPhraseLength = 3
)

// bannedKeywords flag content the assistant must not engage with.
// Matched case-insensitively as substrings; a hit produces a policy
// error pointing the user to direct professional help.
var bannedKeywords = []string{
	"prescribe me",
	"prescription for",
	"dosage of",
	"which medicine to take",
	"buy medicine",
	"how to overdose",
	"how to kill myself",
	"how to end my life",
	"painless way to die",
	"sleeping pills to die",
}

// Result is the outcome of input validation
type Result struct {
	IsValid bool
	Errors  []string
}

// Phrases checks a sequence of extracted symptom phrases against the
// structural rules. All applicable errors are accumulated, not just the
// first. Non-text content (empty or whitespace-only entries) is reported
// per entry; a typed []string cannot carry other kinds of values.
func Phrases(phrases []string) Result {
	var errs []string

	if len(phrases) == 0 {
		errs = append(errs, "please describe at least one symptom")
	}
	if len(phrases) > MaxPhrases {
		errs = append(errs, fmt.Sprintf("maximum %d symptoms per request, got %d", MaxPhrases, len(phrases)))
	}

	for i, phrase := range phrases {
		trimmed := strings.TrimSpace(phrase)
		if trimmed == "" {
			errs = append(errs, fmt.Sprintf("symptom %d is not text", i+1))
			continue
		}
		if utf8.RuneCountInString(trimmed) > MaxPhraseLength {
			errs = append(errs, fmt.Sprintf("symptom %d is too long (over %d characters)", i+1, MaxPhraseLength))
		}
		if banned, ok := containsBanned(trimmed); ok {
			errs = append(errs, fmt.Sprintf(
				"symptom %d contains content this assistant cannot help with (%q); please contact a doctor or helpline directly", i+1, banned))
		}
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func containsBanned(phrase string) (string, bool) {
	lower := strings.ToLower(phrase)
	for _, banned := range bannedKeywords {
		if strings.Contains(lower, banned) {
			return banned, true
		}
	}
	return "", false
}
