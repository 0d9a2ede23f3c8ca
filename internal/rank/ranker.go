package rank

import (
	"sort"

	"github.com/swasthyabot/swasthya/internal/model"
)

// Scoring weights. These are calibration parameters tuned against field
// feedback, not derived from a validated clinical model; keep them in
// sync with the catalog if they are ever revisited.
const (
	baseWeight = 0.2

	frequencyCommonBonus     = 0.4
	frequencyOccasionalBonus = 0.2
	frequencyRareBonus       = 0.1

	severitySevereBonus   = 0.3
	severityModerateBonus = 0.2
	severityMildBonus     = 0.1
)

// TopN is how many ranked diseases a result carries
const TopN = 5

// Ranker aggregates symptom-disease associations into normalized
// per-disease confidence scores
type Ranker struct{}

// NewRanker creates a new ranker
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank groups the matched associations by disease, sums the per-match
// weights, and normalizes by how many symptom phrases the user supplied,
// capped at 1.0. The result is sorted by confidence descending with
// ties keeping first-encounter order, truncated to TopN.
func (r *Ranker) Rank(associations []model.Association, diseaseByID func(id string) (model.Disease, bool), totalSymptomCount int) []model.RankedDisease {
	if len(associations) == 0 || totalSymptomCount <= 0 {
		return nil
	}

	scores := make(map[string]float64)
	var order []string
	for _, a := range associations {
		if _, seen := scores[a.DiseaseID]; !seen {
			order = append(order, a.DiseaseID)
		}
		scores[a.DiseaseID] += weight(a)
	}

	ranked := make([]model.RankedDisease, 0, len(order))
	for _, id := range order {
		disease, ok := diseaseByID(id)
		if !ok {
			continue
		}
		confidence := scores[id] / float64(totalSymptomCount)
		if confidence > 1.0 {
			confidence = 1.0
		}
		ranked = append(ranked, model.RankedDisease{Disease: disease, Confidence: confidence})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return ranked
}

// weight computes the score contribution of one matched association
func weight(a model.Association) float64 {
	w := baseWeight

	switch a.Frequency {
	case model.FrequencyCommon:
		w += frequencyCommonBonus
	case model.FrequencyOccasional:
		w += frequencyOccasionalBonus
	case model.FrequencyRare:
		w += frequencyRareBonus
	}

	switch a.Severity {
	case model.AssociationSevere:
		w += severitySevereBonus
	case model.AssociationModerate:
		w += severityModerateBonus
	case model.AssociationMild:
		w += severityMildBonus
	}

	return w
}
