package model

// Disease is immutable catalog reference data for one known condition
type Disease struct {
	ID             string        `json:"id" yaml:"id"`
	Names          Localized     `json:"names" yaml:"names"`
	Descriptions   Localized     `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`
	Prevention     Localized     `json:"prevention,omitempty" yaml:"prevention,omitempty"`
	WhenToSeekHelp Localized     `json:"when_to_seek_help,omitempty" yaml:"when_to_seek_help,omitempty"`
	EmergencySigns Localized     `json:"emergency_signs,omitempty" yaml:"emergency_signs,omitempty"`
	Severity       SeverityLevel `json:"severity" yaml:"severity"`
	Contagious     bool          `json:"contagious" yaml:"contagious"`
}

// Frequency classifies how often a symptom presents with a disease
type Frequency string

const (
	FrequencyCommon     Frequency = "common"
	FrequencyOccasional Frequency = "occasional"
	FrequencyRare       Frequency = "rare"
)

// AssociationSeverity classifies how severe a symptom tends to be
// when it presents with a disease
type AssociationSeverity string

const (
	AssociationMild     AssociationSeverity = "mild"
	AssociationModerate AssociationSeverity = "moderate"
	AssociationSevere   AssociationSeverity = "severe"
)

// Association links a disease to a symptom it can present with.
// Used only for confidence scoring; many-to-many between Disease and Symptom.
type Association struct {
	DiseaseID string              `json:"disease_id" yaml:"disease_id"`
	SymptomID string              `json:"symptom_id" yaml:"symptom_id"`
	Frequency Frequency           `json:"frequency" yaml:"frequency"`
	Severity  AssociationSeverity `json:"severity" yaml:"severity"`
}
