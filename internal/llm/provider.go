package llm

import "context"

// Provider defines the interface for text-generation providers used to
// paraphrase the advisory narrative. Generation is strictly optional:
// it never affects matching or ranking, and every caller must have a
// fixed fallback for when it is unavailable.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces text for the given prompt
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest contains the input for one generation call
type GenerateRequest struct {
	// Prompt is the full constrained prompt, including the word budget
	// and mandatory disclaimer instructions
	Prompt string

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// GenerateResponse contains the provider's output
type GenerateResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds generation provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   15,
		MaxTokens: 400,
	}
}
