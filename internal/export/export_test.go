package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	got := FileName(ts)
	want := "hallucination-report-20250601-123045.txt"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w := NewWriter(dir, zap.NewNop())

	path, err := w.Write("REPORT BODY\n", "hallucination-report-20250601-123045.txt")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("report written to %q, want directory %q", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back report: %v", err)
	}
	if string(data) != "REPORT BODY\n" {
		t.Errorf("report content = %q", data)
	}
}

func TestWriter_Overwrite(t *testing.T) {
	w := NewWriter(t.TempDir(), zap.NewNop())

	if _, err := w.Write("first", "report.txt"); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	path, err := w.Write("second", "report.txt")
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("content = %q, want latest write to win", data)
	}
}
