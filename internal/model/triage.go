package model

import "time"

// PayloadType discriminates the advisory payload variants
type PayloadType string

const (
	PayloadEmergency   PayloadType = "emergency"
	PayloadError       PayloadType = "error"
	PayloadRateLimited PayloadType = "rate_limited"
	PayloadNoMatch     PayloadType = "no_match"
	PayloadResult      PayloadType = "result"
)

// EmergencySeverity is the tier of a matched emergency keyword
type EmergencySeverity string

const (
	EmergencyCritical EmergencySeverity = "critical"
	EmergencyHigh     EmergencySeverity = "high"
)

// EmergencyKeyword is one static or dynamically sourced emergency trigger
type EmergencyKeyword struct {
	Language string            `json:"language" yaml:"language"`
	Keyword  string            `json:"keyword" yaml:"keyword"`
	Tier     EmergencySeverity `json:"tier" yaml:"tier"`
	Response string            `json:"response" yaml:"response"` // Localized auto-response text
}

// TriageRequest is the ephemeral per-message working state.
// Created per inbound message and discarded once the advisory is produced.
type TriageRequest struct {
	RawText   string
	UserID    string
	Language  string
	Phrases   []string
	Matched   []Symptom
	Ranked    []RankedDisease
	Emergency bool
	Timestamp time.Time
}

// RankedDisease pairs a candidate disease with its normalized confidence
type RankedDisease struct {
	Disease    Disease
	Confidence float64 // In [0.0, 1.0]
}

// SymptomSummary is the user-facing slice of a matched symptom
type SymptomSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"` // Localized
	Severity string `json:"severity"`
}

// DiseaseSuggestion is the user-facing slice of a ranked disease
type DiseaseSuggestion struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"` // Localized
	Confidence     float64 `json:"confidence"`
	Severity       string  `json:"severity"`
	WhenToSeekHelp string  `json:"when_to_seek_help,omitempty"`
}

// AdvisoryPayload is the single output of a triage call.
// Exactly one Type is set; the optional fields follow the type.
type AdvisoryPayload struct {
	Type              PayloadType         `json:"type"`
	Severity          EmergencySeverity   `json:"severity,omitempty"`
	Message           string              `json:"message,omitempty"`
	ResetTime         *time.Time          `json:"reset_time,omitempty"`
	MatchedSymptoms   []SymptomSummary    `json:"matched_symptoms,omitempty"`
	SuggestedDiseases []DiseaseSuggestion `json:"suggested_diseases,omitempty"`
	AdvisoryText      string              `json:"advisory_text,omitempty"`
}
