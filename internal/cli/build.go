package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/swasthyabot/swasthya/internal/catalog"
	"github.com/swasthyabot/swasthya/internal/compose"
	"github.com/swasthyabot/swasthya/internal/emergency"
	"github.com/swasthyabot/swasthya/internal/engine"
	"github.com/swasthyabot/swasthya/internal/llm"
	"github.com/swasthyabot/swasthya/internal/model"
	"github.com/swasthyabot/swasthya/internal/ratelimit"
	"github.com/swasthyabot/swasthya/internal/worker"
)

// loadConfig builds the effective configuration: defaults, then the
// config file and SWASTHYA_* environment (via viper), then flags on
// top where the caller applies them.
func loadConfig() model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("engine.default_language"); v != "" {
		cfg.Engine.DefaultLanguage = v
	}
	if v := viper.GetDuration("engine.log_timeout"); v > 0 {
		cfg.Engine.LogTimeout = v
	}
	if v := viper.GetString("catalog.path"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := viper.GetDuration("rate_limit.window"); v > 0 {
		cfg.RateLimit.Window = v
	}
	if v := viper.GetInt("rate_limit.max_requests"); v > 0 {
		cfg.RateLimit.MaxRequests = v
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetInt("llm.timeout"); v > 0 {
		cfg.LLM.Timeout = v
	}
	if v := viper.GetInt("llm.max_words"); v > 0 {
		cfg.LLM.MaxWords = v
	}

	return cfg
}

// applyLLMEnv fills provider credentials from the environment, matching
// the provider's conventional variables
func applyLLMEnv(cfg *model.Config) error {
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// buildEngine assembles the full triage engine from configuration
func buildEngine(cfg model.Config) (*engine.Engine, error) {
	var (
		cat *catalog.Memory
		err error
	)
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Using catalog file: %s\n", cfg.Catalog.Path)
		}
	} else {
		cat = catalog.Seed()
	}

	store := ratelimit.NewMemoryStore(cfg.RateLimit.Window)
	limiter := ratelimit.NewLimiter(store, cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("create generation provider: %w", err)
	}

	var genLimiter *worker.KeyedLimiter
	if provider != nil {
		genLimiter = worker.NewKeyedLimiter(cfg.LLM.Rate, cfg.LLM.Burst)
	}
	composer := compose.NewComposer(provider, genLimiter,
		time.Duration(cfg.LLM.Timeout)*time.Second, cfg.LLM.MaxWords)

	return engine.New(engine.Options{
		Catalog:         cat,
		Gate:            emergency.NewGate(),
		Limiter:         limiter,
		Composer:        composer,
		DefaultLanguage: cfg.Engine.DefaultLanguage,
		LogTimeout:      cfg.Engine.LogTimeout,
	})
}
