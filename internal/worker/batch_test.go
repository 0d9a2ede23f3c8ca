package worker

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/swasthyabot/swasthya/internal/model"
)

// stubTriager implements Triager and records call counts
type stubTriager struct {
	calls atomic.Int64
}

func (s *stubTriager) Triage(ctx context.Context, rawText, userID, requestedLanguage string) model.AdvisoryPayload {
	s.calls.Add(1)
	return model.AdvisoryPayload{Type: model.PayloadNoMatch, Message: rawText}
}

func TestBatchProcessor_ProcessMessages(t *testing.T) {
	triager := &stubTriager{}
	processor := NewBatchProcessor(triager, 4, "auto")

	messages := []string{
		"user-1\tfever and headache",
		"just a cough",
		"user-3\tstomach pain",
	}

	results := processor.ProcessMessages(context.Background(), messages)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if triager.calls.Load() != 3 {
		t.Errorf("expected 3 triage calls, got %d", triager.calls.Load())
	}

	users := make(map[string]bool)
	for _, r := range results {
		users[r.UserID] = true
	}
	if !users["user-1"] || !users["user-3"] {
		t.Errorf("tab-separated user ids not honored: %v", users)
	}
	if !users["batch-2"] {
		t.Errorf("line without user id should get a per-line id: %v", users)
	}

	for i, r := range results {
		if r.Line != i+1 {
			t.Errorf("result %d out of input order: line %d", i, r.Line)
		}
	}
}

func TestBatchProcessor_ProcessMessages_Empty(t *testing.T) {
	processor := NewBatchProcessor(&stubTriager{}, 2, "")

	results := processor.ProcessMessages(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.txt")
	content := "# comment line\nuser-1\tfever\n\ncough and cold\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	triager := &stubTriager{}
	processor := NewBatchProcessor(triager, 2, "en")

	results, err := processor.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("process file: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results (comment and blank skipped), got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_Missing(t *testing.T) {
	processor := NewBatchProcessor(&stubTriager{}, 2, "en")

	if _, err := processor.ProcessFile(context.Background(), "/no/such/file"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPool_RunsAllJobs(t *testing.T) {
	triager := &stubTriager{}
	pool := NewPool(3)
	pool.Start()

	for i := 0; i < 20; i++ {
		pool.Submit(&TriageJob{Line: i, UserID: "u", Text: "fever", Language: "en", Triager: triager})
	}

	results := pool.Wait()
	if len(results) != 20 {
		t.Errorf("expected 20 results, got %d", len(results))
	}
}
