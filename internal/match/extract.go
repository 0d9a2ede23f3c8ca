package match

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxPhrases caps how many phrases extraction yields
	MaxPhrases = 10
	// MinPhraseLen and MaxPhraseLen bound kept phrases, in characters
	MinPhraseLen = 3
	MaxPhraseLen = 100
)

// symbolSeparators split phrases wherever they appear
var symbolSeparators = []string{",", "&", "+", ";", "।"}

// wordSeparators split phrases only as whole space-delimited words.
// Conjunctions from the supported languages sit alongside the English
// ones so "bukhar aur sardard" splits the same way "fever and headache"
// does. Order is fixed; extraction is deterministic.
var wordSeparators = []string{
	"and", "also", "with",
	"aur", "bhi", "और", "भी",
	"ebong", "আর", "এবং",
	"mariyu", "inka", "మరియు",
	"matrum", "மற்றும்",
	"ani", "आणि",
	"ane", "અને",
	"mattu", "ಮತ್ತು",
	"koodathe", "ഒപ്പം",
	"au", "ଏବଂ",
	"ate", "ਅਤੇ",
	"aru", "আৰু",
}

// Split extracts candidate symptom phrases from free text: separator
// tokens are applied in order, phrases are trimmed, and anything outside
// the length bounds is discarded. No cap is applied; callers that need
// the hard limit use Phrases.
func Split(text string) []string {
	lowered := " " + strings.ToLower(text) + " "

	for _, sep := range wordSeparators {
		lowered = strings.ReplaceAll(lowered, " "+sep+" ", " , ")
	}
	for _, sep := range symbolSeparators[1:] {
		lowered = strings.ReplaceAll(lowered, sep, ",")
	}

	parts := strings.Split(lowered, ",")
	phrases := make([]string, 0, len(parts))
	for _, part := range parts {
		phrase := strings.TrimSpace(part)
		n := utf8.RuneCountInString(phrase)
		if n < MinPhraseLen || n > MaxPhraseLen {
			continue
		}
		phrases = append(phrases, phrase)
	}
	return phrases
}

// Phrases is Split with the hard cap applied: at most MaxPhrases
// phrases are returned, keeping the earliest ones.
func Phrases(text string) []string {
	phrases := Split(text)
	if len(phrases) > MaxPhrases {
		phrases = phrases[:MaxPhrases]
	}
	return phrases
}
