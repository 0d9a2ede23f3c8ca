package rank

import (
	"fmt"
	"math"
	"testing"

	"github.com/swasthyabot/swasthya/internal/model"
)

func diseaseLookup(diseases ...model.Disease) func(string) (model.Disease, bool) {
	byID := make(map[string]model.Disease, len(diseases))
	for _, d := range diseases {
		byID[d.ID] = d
	}
	return func(id string) (model.Disease, bool) {
		d, ok := byID[id]
		return d, ok
	}
}

func TestRanker_Rank_MalariaScenario(t *testing.T) {
	ranker := NewRanker()
	malaria := model.Disease{ID: "malaria", Names: model.Localized{"en": "Malaria"}}

	// fever common/severe, headache occasional/moderate, chills common/mild:
	// (0.2+0.4+0.3) + (0.2+0.2+0.2) + (0.2+0.4+0.1) = 2.2, over 3 symptoms.
	associations := []model.Association{
		{DiseaseID: "malaria", SymptomID: "fever", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
		{DiseaseID: "malaria", SymptomID: "headache", Frequency: model.FrequencyOccasional, Severity: model.AssociationModerate},
		{DiseaseID: "malaria", SymptomID: "chills", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
	}

	ranked := ranker.Rank(associations, diseaseLookup(malaria), 3)
	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked disease, got %d", len(ranked))
	}
	if ranked[0].Disease.ID != "malaria" {
		t.Errorf("expected malaria first, got %q", ranked[0].Disease.ID)
	}
	if math.Abs(ranked[0].Confidence-2.2/3) > 1e-9 {
		t.Errorf("expected confidence 2.2/3, got %v", ranked[0].Confidence)
	}
}

func TestRanker_Rank_CapsAtOne(t *testing.T) {
	ranker := NewRanker()
	d := model.Disease{ID: "d", Names: model.Localized{"en": "D"}}

	// 2.2 over 2 symptoms would be 1.1 uncapped.
	associations := []model.Association{
		{DiseaseID: "d", SymptomID: "fever", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
		{DiseaseID: "d", SymptomID: "headache", Frequency: model.FrequencyOccasional, Severity: model.AssociationModerate},
		{DiseaseID: "d", SymptomID: "chills", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
	}

	ranked := ranker.Rank(associations, diseaseLookup(d), 2)
	if ranked[0].Confidence != 1.0 {
		t.Errorf("expected confidence capped at 1.0, got %v", ranked[0].Confidence)
	}
}

func TestRanker_Rank_Normalization(t *testing.T) {
	ranker := NewRanker()
	flu := model.Disease{ID: "flu", Names: model.Localized{"en": "Flu"}}

	associations := []model.Association{
		{DiseaseID: "flu", SymptomID: "fever", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	}

	// One matched association (0.2+0.4+0.2 = 0.8) over 4 supplied symptoms.
	ranked := ranker.Rank(associations, diseaseLookup(flu), 4)
	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked disease, got %d", len(ranked))
	}
	if math.Abs(ranked[0].Confidence-0.2) > 1e-9 {
		t.Errorf("expected confidence 0.2, got %v", ranked[0].Confidence)
	}
}

func TestRanker_Rank_UnknownCategoriesGetBaseOnly(t *testing.T) {
	ranker := NewRanker()
	d := model.Disease{ID: "d", Names: model.Localized{"en": "D"}}

	associations := []model.Association{
		{DiseaseID: "d", SymptomID: "s", Frequency: "weird", Severity: "stranger"},
	}

	ranked := ranker.Rank(associations, diseaseLookup(d), 1)
	if math.Abs(ranked[0].Confidence-baseWeight) > 1e-9 {
		t.Errorf("unknown categories should add no bonus, got %v", ranked[0].Confidence)
	}
}

func TestRanker_Rank_SortedAndBounded(t *testing.T) {
	ranker := NewRanker()

	var diseases []model.Disease
	var associations []model.Association
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("d%d", i)
		diseases = append(diseases, model.Disease{ID: id, Names: model.Localized{"en": id}})
		// Later diseases get more matched associations, so higher scores.
		for j := 0; j <= i; j++ {
			associations = append(associations, model.Association{
				DiseaseID: id,
				SymptomID: fmt.Sprintf("s%d", j),
				Frequency: model.FrequencyRare,
				Severity:  model.AssociationMild,
			})
		}
	}

	ranked := ranker.Rank(associations, diseaseLookup(diseases...), 10)
	if len(ranked) != TopN {
		t.Fatalf("expected top %d, got %d", TopN, len(ranked))
	}
	for i := range ranked {
		if ranked[i].Confidence < 0 || ranked[i].Confidence > 1 {
			t.Errorf("confidence %v outside [0,1]", ranked[i].Confidence)
		}
		if i > 0 && ranked[i].Confidence > ranked[i-1].Confidence {
			t.Error("confidences not sorted non-increasing")
		}
	}
	if ranked[0].Disease.ID != "d7" {
		t.Errorf("expected d7 ranked first, got %q", ranked[0].Disease.ID)
	}
}

func TestRanker_Rank_StableTies(t *testing.T) {
	ranker := NewRanker()
	a := model.Disease{ID: "a", Names: model.Localized{"en": "A"}}
	b := model.Disease{ID: "b", Names: model.Localized{"en": "B"}}

	// Identical weights; "a" encountered first must stay first.
	associations := []model.Association{
		{DiseaseID: "a", SymptomID: "s1", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
		{DiseaseID: "b", SymptomID: "s1", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
	}

	ranked := ranker.Rank(associations, diseaseLookup(a, b), 2)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked diseases, got %d", len(ranked))
	}
	if ranked[0].Disease.ID != "a" || ranked[1].Disease.ID != "b" {
		t.Errorf("tie order not stable: %q then %q", ranked[0].Disease.ID, ranked[1].Disease.ID)
	}
}

func TestRanker_Rank_EmptyAndZeroCount(t *testing.T) {
	ranker := NewRanker()

	if got := ranker.Rank(nil, diseaseLookup(), 3); got != nil {
		t.Errorf("expected nil for no associations, got %+v", got)
	}

	associations := []model.Association{{DiseaseID: "a", SymptomID: "s"}}
	if got := ranker.Rank(associations, diseaseLookup(), 0); got != nil {
		t.Errorf("expected nil for zero symptom count, got %+v", got)
	}
}

func TestRanker_Rank_SkipsUnknownDiseases(t *testing.T) {
	ranker := NewRanker()
	known := model.Disease{ID: "known", Names: model.Localized{"en": "Known"}}

	associations := []model.Association{
		{DiseaseID: "ghost", SymptomID: "s1", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
		{DiseaseID: "known", SymptomID: "s1", Frequency: model.FrequencyRare, Severity: model.AssociationMild},
	}

	ranked := ranker.Rank(associations, diseaseLookup(known), 1)
	if len(ranked) != 1 || ranked[0].Disease.ID != "known" {
		t.Errorf("diseases missing from the catalog must be skipped, got %+v", ranked)
	}
}
