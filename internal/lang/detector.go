package lang

import (
	"regexp"
	"strings"

	"github.com/swasthyabot/swasthya/internal/model"
)

// detectionOrder fixes the enumeration order for both detection passes.
// First match wins, not best match, so a text mixing scripts always
// resolves the same way. Devanagari resolves to "hi" and Bengali script
// to "bn"; "mr" and "as" are reachable only through lexical patterns or
// an explicit requested language.
var detectionOrder = []string{
	"hi", "bn", "te", "ta", "mr", "gu", "kn", "ml", "or", "pa", "as", "ur", "sat",
}

type scriptRange struct {
	lo, hi rune
}

var scriptRanges = map[string][]scriptRange{
	"hi":  {{0x0900, 0x097F}}, // Devanagari
	"bn":  {{0x0980, 0x09FF}}, // Bengali
	"te":  {{0x0C00, 0x0C7F}}, // Telugu
	"ta":  {{0x0B80, 0x0BFF}}, // Tamil
	"gu":  {{0x0A80, 0x0AFF}}, // Gujarati
	"kn":  {{0x0C80, 0x0CFF}}, // Kannada
	"ml":  {{0x0D00, 0x0D7F}}, // Malayalam
	"or":  {{0x0B00, 0x0B7F}}, // Odia
	"pa":  {{0x0A00, 0x0A7F}}, // Gurmukhi
	"ur":  {{0x0600, 0x06FF}, {0x0750, 0x077F}}, // Arabic + supplement
	"sat": {{0x1C50, 0x1C7F}}, // Ol Chiki
}

// lexicalPatterns matches Romanized text by word-boundary function words.
// Keywords are picked to be distinctive per language; overlaps resolve by
// detection order.
var lexicalPatterns = map[string]*regexp.Regexp{
	"hi":  regexp.MustCompile(`(?i)\b(mujhe|mujhko|bukhar|dard|nahin|kyunki|hua hai)\b`),
	"bn":  regexp.MustCompile(`(?i)\b(amar|amake|jor|byatha|hoyeche|keno)\b`),
	"te":  regexp.MustCompile(`(?i)\b(naaku|nenu|jwaram|noppi|undhi|chala)\b`),
	"ta":  regexp.MustCompile(`(?i)\b(enakku|naan|kaichal|vali|irukku|romba)\b`),
	"mr":  regexp.MustCompile(`(?i)\b(mala|majhya|taap|dukhat|ahe|khup)\b`),
	"gu":  regexp.MustCompile(`(?i)\b(mane|mara|tav|dukhavo|thayo|bahu)\b`),
	"kn":  regexp.MustCompile(`(?i)\b(nanage|nanna|jvara|nove|ide|tumba)\b`),
	"ml":  regexp.MustCompile(`(?i)\b(enikku|ente|pani|vedana|undu|valare)\b`),
	"or":  regexp.MustCompile(`(?i)\b(mote|mora|jara|byatha achhi|heichi)\b`),
	"pa":  regexp.MustCompile(`(?i)\b(mainu|tuhanu|saanu|dukhda|haigi)\b`),
	"as":  regexp.MustCompile(`(?i)\b(mok|moi|gorom lagise|bikh|hoise)\b`),
	"ur":  regexp.MustCompile(`(?i)\b(mujhey|bukhaar|shadeed|takleef|raha hai)\b`),
	"sat": regexp.MustCompile(`(?i)\b(injaah|ruwa|hasu|menakhan)\b`),
}

// Detector classifies raw text into a supported language code
type Detector struct{}

// NewDetector creates a new language detector
func NewDetector() *Detector {
	return &Detector{}
}

// Identify returns the best-effort language code for text.
// Pass 1 checks native script ranges in fixed order, pass 2 checks
// Romanized lexical patterns in the same order, then defaults to English.
// No side effects.
func (d *Detector) Identify(text string) string {
	for _, code := range detectionOrder {
		ranges, ok := scriptRanges[code]
		if !ok {
			continue
		}
		if containsScript(text, ranges) {
			return code
		}
	}

	for _, code := range detectionOrder {
		pattern, ok := lexicalPatterns[code]
		if !ok {
			continue
		}
		if pattern.MatchString(text) {
			return code
		}
	}

	return model.FallbackLanguage
}

func containsScript(text string, ranges []scriptRange) bool {
	for _, r := range text {
		for _, sr := range ranges {
			if r >= sr.lo && r <= sr.hi {
				return true
			}
		}
	}
	return false
}

// Supported returns all language codes the engine can produce
func Supported() []string {
	codes := make([]string, 0, len(detectionOrder)+1)
	codes = append(codes, model.FallbackLanguage)
	codes = append(codes, detectionOrder...)
	return codes
}

// IsSupported reports whether code is a known language code
func IsSupported(code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == model.FallbackLanguage {
		return true
	}
	for _, c := range detectionOrder {
		if c == code {
			return true
		}
	}
	return false
}
