package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/swasthyabot/swasthya/internal/catalog"
	"github.com/swasthyabot/swasthya/internal/model"
)

// Matcher matches extracted phrases against the symptom catalog
type Matcher struct {
	catalog catalog.Reader
}

// NewMatcher creates a matcher over the given catalog
func NewMatcher(c catalog.Reader) *Matcher {
	return &Matcher{catalog: c}
}

// Match returns the de-duplicated set of symptoms matched by any
// phrase, in catalog order. Matching is case-insensitive bidirectional
// substring containment against the per-language name with fallback to
// the canonical English name. Deliberately permissive so partial or
// garbled phrasing still lands on the right symptom.
func (m *Matcher) Match(ctx context.Context, phrases []string, language string) ([]model.Symptom, error) {
	if len(phrases) == 0 {
		return nil, nil
	}

	symptoms, err := m.catalog.Symptoms(ctx)
	if err != nil {
		return nil, fmt.Errorf("read symptom catalog: %w", err)
	}

	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(strings.TrimSpace(p))
	}

	seen := make(map[string]bool)
	var matched []model.Symptom
	for _, symptom := range symptoms {
		name := strings.ToLower(symptom.LocalName(language))
		if name == "" {
			continue
		}
		for _, phrase := range lowered {
			if phrase == "" {
				continue
			}
			if strings.Contains(phrase, name) || strings.Contains(name, phrase) {
				if !seen[symptom.ID] {
					seen[symptom.ID] = true
					matched = append(matched, symptom)
				}
				break
			}
		}
	}

	return matched, nil
}
