package catalog

import (
	"context"
	"testing"

	"github.com/swasthyabot/swasthya/internal/model"
)

func TestSeed_Integrity(t *testing.T) {
	m := Seed()

	symptoms, err := m.Symptoms(context.Background())
	if err != nil {
		t.Fatalf("symptoms: %v", err)
	}
	if len(symptoms) == 0 {
		t.Fatal("seed catalog has no symptoms")
	}

	for _, s := range symptoms {
		if s.Names.Get("en") == "" {
			t.Errorf("symptom %q has no English name", s.ID)
		}
	}
}

func TestMemory_AssociationsForSymptoms(t *testing.T) {
	m := Seed()

	assocs, err := m.AssociationsForSymptoms(context.Background(), []string{"fever", "chills"})
	if err != nil {
		t.Fatalf("associations: %v", err)
	}
	if len(assocs) == 0 {
		t.Fatal("expected associations for fever/chills")
	}
	for _, a := range assocs {
		if a.SymptomID != "fever" && a.SymptomID != "chills" {
			t.Errorf("unexpected association for symptom %q", a.SymptomID)
		}
	}

	none, err := m.AssociationsForSymptoms(context.Background(), []string{"no-such-symptom"})
	if err != nil {
		t.Fatalf("associations: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no associations, got %d", len(none))
	}
}

func TestNewMemory_RejectsDanglingAssociation(t *testing.T) {
	symptoms := []model.Symptom{{ID: "fever", Name: "fever"}}
	diseases := []model.Disease{{ID: "flu", Names: model.Localized{"en": "Flu"}}}

	_, err := NewMemory(symptoms, diseases, []model.Association{
		{DiseaseID: "flu", SymptomID: "missing"},
	})
	if err == nil {
		t.Error("expected error for association referencing unknown symptom")
	}

	_, err = NewMemory(symptoms, diseases, []model.Association{
		{DiseaseID: "missing", SymptomID: "fever"},
	})
	if err == nil {
		t.Error("expected error for association referencing unknown disease")
	}
}

func TestNewMemory_RejectsDuplicatesAndMissingNames(t *testing.T) {
	_, err := NewMemory([]model.Symptom{{ID: "a", Name: "a"}, {ID: "a", Name: "a"}}, nil, nil)
	if err == nil {
		t.Error("expected error for duplicate symptom id")
	}

	_, err = NewMemory([]model.Symptom{{ID: "a", Name: "a"}}, []model.Disease{{ID: "d"}}, nil)
	if err == nil {
		t.Error("expected error for disease without English name")
	}
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
symptoms:
  - id: fever
    name: fever
    names:
      en: fever
      hi: "बुखार"
    severity: 2
diseases:
  - id: malaria
    names:
      en: Malaria
    severity: 3
associations:
  - disease_id: malaria
    symptom_id: fever
    frequency: common
    severity: severe
`)

	m, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	d, ok, err := m.DiseaseByID(context.Background(), "malaria")
	if err != nil || !ok {
		t.Fatalf("disease lookup failed: ok=%v err=%v", ok, err)
	}
	if d.Names.Get("en") != "Malaria" {
		t.Errorf("unexpected disease name %q", d.Names.Get("en"))
	}

	symptoms, _ := m.Symptoms(context.Background())
	if symptoms[0].Names.Get("hi") != "बुखार" {
		t.Errorf("localized symptom name not parsed: %+v", symptoms[0].Names)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("symptoms: {bad")); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := Parse([]byte("diseases: []")); err == nil {
		t.Error("expected error for catalog without symptoms")
	}
}
