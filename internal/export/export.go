package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Writer persists serialized reports to disk. The pipeline produces the
// report string; only this collaborator touches the filesystem.
type Writer struct {
	dir    string
	logger *zap.Logger
}

func NewWriter(dir string, logger *zap.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// FileName returns the canonical report name for a point in time.
func FileName(t time.Time) string {
	return "hallucination-report-" + t.Format("20060102-150405") + ".txt"
}

// Write stores the report under name in the writer's directory and returns
// the full path. The directory is created on first use.
func (w *Writer) Write(report, name string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	w.logger.Info("report exported",
		zap.String("path", path),
		zap.Int("bytes", len(report)))
	return path, nil
}
