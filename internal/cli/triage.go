package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	triageUser    string
	triageLang    string
	catalogPath   string
	triageTimeout time.Duration
	llmEnabled    bool
	llmProvider   string
	llmModel      string
)

// triageCmd represents the triage command
var triageCmd = &cobra.Command{
	Use:   "triage <message>",
	Short: "Triage a single symptom message and print the advisory as JSON",
	Long: `Triage runs one message through the full pipeline:
- Detect the language (or honor --lang)
- Screen for emergency keywords
- Extract and validate symptom phrases
- Match symptoms and rank possible conditions
- Compose the advisory with the mandatory disclaimer

Example:
  swasthya triage "I have fever and headache"
  swasthya triage "mujhe bukhar hai" --user farmer-22
  swasthya triage "fever, chills" --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runTriage,
}

func init() {
	rootCmd.AddCommand(triageCmd)

	triageCmd.Flags().StringVar(&triageUser, "user", "cli", "user identity for rate limiting")
	triageCmd.Flags().StringVar(&triageLang, "lang", "", "response language code (default: auto-detect)")
	triageCmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in catalog)")
	triageCmd.Flags().DurationVar(&triageTimeout, "timeout", 30*time.Second, "overall triage timeout")

	// LLM flags
	triageCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM advisory generation")
	triageCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	triageCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runTriage(cmd *cobra.Command, args []string) error {
	message := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), triageTimeout)
	defer cancel()

	cfg := loadConfig()
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}
		if err := applyLLMEnv(&cfg); err != nil {
			return err
		}
	} else {
		cfg.LLM.Provider = ""
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "User: %s\n", triageUser)
		if triageLang != "" {
			fmt.Fprintf(os.Stderr, "Language: %s\n", triageLang)
		}
		fmt.Fprintln(os.Stderr)
	}

	payload := eng.Triage(ctx, message, triageUser, triageLang)

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
