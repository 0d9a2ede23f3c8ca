package model

// FallbackLanguage is the canonical language every localized field must carry.
const FallbackLanguage = "en"

// Localized maps a language code to a translated string.
// It replaces ad hoc `field_<lang>` lookups with one resolution rule:
// exact language first, then the English entry, then empty.
type Localized map[string]string

// Get returns the value for language, falling back to English
func (l Localized) Get(language string) string {
	if l == nil {
		return ""
	}
	if v, ok := l[language]; ok && v != "" {
		return v
	}
	return l[FallbackLanguage]
}

// GetOr returns the localized value, or def if the map has no usable entry
func (l Localized) GetOr(language, def string) string {
	if v := l.Get(language); v != "" {
		return v
	}
	return def
}
