package model

import "time"

// Config is the full engine configuration.
// Hierarchy (highest to lowest priority): CLI flags, SWASTHYA_* environment
// variables, ~/.swasthya/config.yaml, the defaults below.
type Config struct {
	Engine    EngineConfig    `yaml:"engine"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	LLM       LLMConfig       `yaml:"llm"`
}

// EngineConfig holds pipeline-level settings
type EngineConfig struct {
	DefaultLanguage string        `yaml:"default_language"` // Used when detection finds nothing
	LogTimeout      time.Duration `yaml:"log_timeout"`      // Budget for fire-and-forget query logging
}

// CatalogConfig locates the symptom/disease reference data
type CatalogConfig struct {
	Path string `yaml:"path"` // YAML catalog file; empty = built-in seed catalog
}

// RateLimitConfig bounds triage requests per user identity
type RateLimitConfig struct {
	Window      time.Duration `yaml:"window"`
	MaxRequests int           `yaml:"max_requests"`
}

// LLMConfig configures the optional advisory paraphrase generation
type LLMConfig struct {
	Provider  string  `yaml:"provider"` // "openai", "ollama", "" = disabled
	Model     string  `yaml:"model"`
	APIKey    string  `yaml:"api_key,omitempty"`
	BaseURL   string  `yaml:"base_url,omitempty"`
	Timeout   int     `yaml:"timeout"` // seconds
	MaxTokens int     `yaml:"max_tokens"`
	MaxWords  int     `yaml:"max_words"` // Word budget for the generated narrative
	Rate      float64 `yaml:"rate"`      // Outbound calls per second per provider
	Burst     int     `yaml:"burst"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			DefaultLanguage: FallbackLanguage,
			LogTimeout:      2 * time.Second,
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		RateLimit: RateLimitConfig{
			Window:      time.Hour,
			MaxRequests: 20,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   15,
			MaxTokens: 400,
			MaxWords:  120,
			Rate:      2,
			Burst:     4,
		},
	}
}
