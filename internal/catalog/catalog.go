package catalog

import (
	"context"
	"fmt"

	"github.com/swasthyabot/swasthya/internal/model"
)

// Reader provides read-only access to the reference catalogs. The
// engine only ever reads; catalogs are loaded once and treated as
// immutable for the lifetime of the process.
type Reader interface {
	// Symptoms returns every catalog symptom in stable order.
	Symptoms(ctx context.Context) ([]model.Symptom, error)

	// DiseaseByID returns one disease by identifier.
	DiseaseByID(ctx context.Context, id string) (model.Disease, bool, error)

	// AssociationsForSymptoms returns every association whose symptom id
	// is in symptomIDs, preserving catalog order.
	AssociationsForSymptoms(ctx context.Context, symptomIDs []string) ([]model.Association, error)
}

// Memory is an in-process catalog
type Memory struct {
	symptoms     []model.Symptom
	diseases     map[string]model.Disease
	associations []model.Association
}

// NewMemory builds an in-process catalog and verifies referential
// integrity of the associations
func NewMemory(symptoms []model.Symptom, diseases []model.Disease, associations []model.Association) (*Memory, error) {
	symptomIDs := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		if s.ID == "" {
			return nil, fmt.Errorf("symptom with empty id (name %q)", s.Name)
		}
		if symptomIDs[s.ID] {
			return nil, fmt.Errorf("duplicate symptom id %q", s.ID)
		}
		symptomIDs[s.ID] = true
	}

	diseaseByID := make(map[string]model.Disease, len(diseases))
	for _, d := range diseases {
		if d.ID == "" {
			return nil, fmt.Errorf("disease with empty id")
		}
		if _, exists := diseaseByID[d.ID]; exists {
			return nil, fmt.Errorf("duplicate disease id %q", d.ID)
		}
		if d.Names.Get(model.FallbackLanguage) == "" {
			return nil, fmt.Errorf("disease %q has no English name", d.ID)
		}
		diseaseByID[d.ID] = d
	}

	for _, a := range associations {
		if !symptomIDs[a.SymptomID] {
			return nil, fmt.Errorf("association references unknown symptom %q", a.SymptomID)
		}
		if _, ok := diseaseByID[a.DiseaseID]; !ok {
			return nil, fmt.Errorf("association references unknown disease %q", a.DiseaseID)
		}
	}

	return &Memory{
		symptoms:     symptoms,
		diseases:     diseaseByID,
		associations: associations,
	}, nil
}

// Symptoms implements Reader
func (m *Memory) Symptoms(ctx context.Context) ([]model.Symptom, error) {
	return m.symptoms, nil
}

// DiseaseByID implements Reader
func (m *Memory) DiseaseByID(ctx context.Context, id string) (model.Disease, bool, error) {
	d, ok := m.diseases[id]
	return d, ok, nil
}

// AssociationsForSymptoms implements Reader
func (m *Memory) AssociationsForSymptoms(ctx context.Context, symptomIDs []string) ([]model.Association, error) {
	wanted := make(map[string]bool, len(symptomIDs))
	for _, id := range symptomIDs {
		wanted[id] = true
	}

	var matched []model.Association
	for _, a := range m.associations {
		if wanted[a.SymptomID] {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
