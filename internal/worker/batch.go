package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/swasthyabot/swasthya/internal/model"
)

// Triager is the engine boundary the batch processor drives
type Triager interface {
	Triage(ctx context.Context, rawText, userID, requestedLanguage string) model.AdvisoryPayload
}

// TriageJob is one message to run through the engine
type TriageJob struct {
	Line     int
	UserID   string
	Text     string
	Language string
	Triager  Triager
}

// Execute implements Job
func (j *TriageJob) Execute(ctx context.Context) Result {
	payload := j.Triager.Triage(ctx, j.Text, j.UserID, j.Language)
	return &TriageResult{
		Line:    j.Line,
		UserID:  j.UserID,
		Payload: payload,
	}
}

// TriageResult is the outcome of one batch line
type TriageResult struct {
	Line    int
	UserID  string
	Payload model.AdvisoryPayload
	Err     error
}

// GetError implements Result
func (r *TriageResult) GetError() error {
	return r.Err
}

// BatchProcessor processes many messages concurrently
type BatchProcessor struct {
	triager     Triager
	concurrency int
	language    string
}

// NewBatchProcessor creates a batch processor over the given engine
func NewBatchProcessor(triager Triager, concurrency int, language string) *BatchProcessor {
	if language == "" {
		language = "auto"
	}
	return &BatchProcessor{
		triager:     triager,
		concurrency: concurrency,
		language:    language,
	}
}

// ProcessMessages triages all messages concurrently. Each message may
// be "userID<TAB>text"; a line without a tab gets a per-line user id.
func (b *BatchProcessor) ProcessMessages(ctx context.Context, messages []string) []*TriageResult {
	if len(messages) == 0 {
		return []*TriageResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for i, message := range messages {
		userID, text := splitMessage(message, i)
		pool.Submit(&TriageJob{
			Line:     i + 1,
			UserID:   userID,
			Text:     text,
			Language: b.language,
			Triager:  b.triager,
		})
	}

	results := pool.Wait()

	triageResults := make([]*TriageResult, len(results))
	for i, result := range results {
		triageResults[i] = result.(*TriageResult)
	}
	// Completion order is nondeterministic; restore input order.
	sort.Slice(triageResults, func(i, j int) bool {
		return triageResults[i].Line < triageResults[j].Line
	})
	return triageResults
}

// ProcessFile reads one message per line from filePath and triages them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*TriageResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open messages file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var messages []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		messages = append(messages, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read messages file: %w", err)
	}

	return b.ProcessMessages(ctx, messages), nil
}

func splitMessage(message string, index int) (userID, text string) {
	if user, rest, found := strings.Cut(message, "\t"); found && strings.TrimSpace(user) != "" {
		return strings.TrimSpace(user), strings.TrimSpace(rest)
	}
	return fmt.Sprintf("batch-%d", index+1), message
}
