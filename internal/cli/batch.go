package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/swasthyabot/swasthya/internal/model"
	"github.com/swasthyabot/swasthya/internal/worker"
)

var (
	concurrency  int
	batchLang    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Triage multiple messages from a file in parallel",
	Long: `Batch processes many symptom messages concurrently:
- Read messages from the input file (one per line)
- A line may carry an explicit identity as "userID<TAB>message"
- Lines starting with # are skipped
- Messages run through the full pipeline with configurable worker count
- One JSON advisory payload per line on stdout, in input order

Example:
  swasthya batch messages.txt
  swasthya batch messages.txt --concurrency 10
  swasthya batch messages.txt --lang hi --catalog catalog.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchLang, "lang", "", "response language for every message (default: auto-detect)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in catalog)")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM advisory generation")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Swasthya Batch Triage\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

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
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	} else {
		cfg.LLM.Provider = ""
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	processor := worker.NewBatchProcessor(eng, concurrency, batchLang)

	fmt.Fprintf(os.Stderr, "⚙️  Processing messages with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	counts := map[model.PayloadType]int{}
	failureCount := 0

	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ line %d (%s): %v\n", result.Line, result.UserID, result.Err)
			continue
		}

		counts[result.Payload.Type]++

		out, err := json.Marshal(result.Payload)
		if err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ line %d (%s): encode payload: %v\n", result.Line, result.UserID, err)
			continue
		}
		fmt.Println(string(out))

		if verbose {
			fmt.Fprintf(os.Stderr, "✓ line %d (%s): %s\n", result.Line, result.UserID, result.Payload.Type)
		}
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:        %d messages\n", len(results))
	fmt.Fprintf(os.Stderr, "  Results:      %d\n", counts[model.PayloadResult])
	fmt.Fprintf(os.Stderr, "  Emergencies:  %d\n", counts[model.PayloadEmergency])
	fmt.Fprintf(os.Stderr, "  No match:     %d\n", counts[model.PayloadNoMatch])
	fmt.Fprintf(os.Stderr, "  Rate limited: %d\n", counts[model.PayloadRateLimited])
	fmt.Fprintf(os.Stderr, "  Errors:       %d\n", counts[model.PayloadError]+failureCount)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
