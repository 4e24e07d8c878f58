package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Harshitk-cp/veritas/internal/detector"
	"github.com/Harshitk-cp/veritas/internal/extract"
	"github.com/Harshitk-cp/veritas/internal/notify"
	"go.uber.org/zap"
)

type watchResult struct {
	path    string
	outcome *RunOutcome
	err     error
}

func newTestWatcher(t *testing.T, dir string) (*WatchService, *detector.MockClient, chan watchResult) {
	t.Helper()

	mock := detector.NewMockClient()
	analysis := NewAnalysisService(mock, notify.Silent{}, zap.NewNop())
	extractor := extract.NewExtractor(zap.NewNop())

	w, err := NewWatchService(dir, analysis, extractor, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatchService failed: %v", err)
	}

	results := make(chan watchResult, 4)
	w.OnResult = func(path string, outcome *RunOutcome, err error) {
		results <- watchResult{path, outcome, err}
	}
	return w, mock, results
}

func TestWatchService_AnalyzesChangedFile(t *testing.T) {
	dir := t.TempDir()
	w, mock, results := newTestWatcher(t, dir)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	content := "The Eiffel Tower is 330 meters tall.\n"
	path := filepath.Join(dir, "claims.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	select {
	case res := <-results:
		if res.err != nil {
			t.Fatalf("watcher run failed: %v", res.err)
		}
		if filepath.Base(res.path) != "claims.txt" {
			t.Errorf("result path = %q, want claims.txt", res.path)
		}
		if res.outcome == nil || res.outcome.Status != RunCompleted {
			t.Fatalf("outcome = %+v, want completed run", res.outcome)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for the watcher to analyze the file")
	}

	if len(mock.ExtractCalls) != 1 || mock.ExtractCalls[0].Text != content {
		t.Errorf("extract calls = %+v, want one call with the file content", mock.ExtractCalls)
	}
}

func TestWatchService_IgnoresUnwatchedExtensions(t *testing.T) {
	dir := t.TempDir()
	w, mock, results := newTestWatcher(t, dir)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "notes.pdf")
	if err := os.WriteFile(path, []byte("binary-ish"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	// Longer than the debounce window plus a tick; nothing should fire.
	select {
	case res := <-results:
		t.Fatalf("unexpected analysis for %q", res.path)
	case <-time.After(1200 * time.Millisecond):
	}

	if len(mock.ExtractCalls) != 0 {
		t.Errorf("extract calls = %+v, want none", mock.ExtractCalls)
	}
}

func TestWatchService_StartMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	w, _, _ := newTestWatcher(t, dir)

	err := w.Start(context.Background())
	if err == nil {
		t.Fatal("expected Start to fail for a missing directory")
	}
	if !strings.Contains(err.Error(), "watch") {
		t.Errorf("err = %v, want watch wrap", err)
	}

	// A failed Start leaves the watcher stopped; Stop must not hang.
	w.Stop()
}

func TestWatchService_StartStopIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, _, _ := newTestWatcher(t, dir)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("second Start should be a no-op, got %v", err)
	}

	w.Stop()
	w.Stop()
}

func TestWatchService_StopWithoutStart(t *testing.T) {
	w, _, _ := newTestWatcher(t, t.TempDir())
	w.Stop()
}
