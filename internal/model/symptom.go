package model

// SeverityLevel is the ordinal severity of a symptom or disease
type SeverityLevel int

const (
	SeverityUnknown  SeverityLevel = 0
	SeverityMild     SeverityLevel = 1
	SeverityModerate SeverityLevel = 2
	SeveritySevere   SeverityLevel = 3
)

func (s SeverityLevel) String() string {
	switch s {
	case SeverityMild:
		return "mild"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	default:
		return "unknown"
	}
}

// Symptom is immutable catalog reference data for one known symptom
type Symptom struct {
	ID       string        `json:"id" yaml:"id"`                               // Stable catalog identifier
	Name     string        `json:"name" yaml:"name"`                           // Canonical English name
	Names    Localized     `json:"names,omitempty" yaml:"names,omitempty"`     // Per-language name variants
	BodyPart string        `json:"body_part,omitempty" yaml:"body_part,omitempty"`
	Severity SeverityLevel `json:"severity" yaml:"severity"`
}

// LocalName returns the symptom name for the given language,
// falling back to the canonical English name
func (s Symptom) LocalName(language string) string {
	if name := s.Names.Get(language); name != "" {
		return name
	}
	return s.Name
}
