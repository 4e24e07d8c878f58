package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/Harshitk-cp/veritas/internal/extract"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchedExts mirrors the formats the extractor supports.
var watchedExts = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// WatchService re-analyzes documents in a directory whenever they change.
// Rapid saves are debounced; a change arriving while a run is in flight is
// skipped and picked up on the next save.
type WatchService struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	analysis    *AnalysisService
	extractor   *extract.Extractor
	dir         string
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	logger      *zap.Logger

	// OnResult receives the outcome of each triggered run when set.
	OnResult func(path string, outcome *RunOutcome, err error)
}

func NewWatchService(dir string, analysis *AnalysisService, extractor *extract.Extractor, logger *zap.Logger) (*WatchService, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &WatchService{
		watcher:     watcher,
		analysis:    analysis,
		extractor:   extractor,
		dir:         dir,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		logger:      logger,
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine.
func (w *WatchService) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.running = true
	w.logger.Info("watching directory", zap.String("dir", w.dir))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to drain.
func (w *WatchService) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("close watcher", zap.Error(err))
	}
}

func (w *WatchService) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-ticker.C:
			w.processSettled(ctx)
		}
	}
}

func (w *WatchService) handleEvent(event fsnotify.Event) {
	if !watchedExts[strings.ToLower(filepath.Ext(event.Name))] {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	w.mu.Lock()
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

// processSettled runs analyses for files whose last event is outside the
// debounce window.
func (w *WatchService) processSettled(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			settled = append(settled, path)
			delete(w.debounceMap, path)
		}
	}
	w.mu.Unlock()

	for _, path := range settled {
		w.analyzeFile(ctx, path)
	}
}

func (w *WatchService) analyzeFile(ctx context.Context, path string) {
	if _, err := os.Stat(path); err != nil {
		// Deleted between the event and the debounce window.
		return
	}

	text, err := w.extractor.FromFile(path)
	if err != nil {
		w.logger.Warn("document extraction failed",
			zap.String("path", path),
			zap.Error(err))
		w.emit(path, nil, err)
		return
	}

	state := domain.InputState{
		Mode:          domain.InputModeFile,
		ExtractedText: text,
		FileName:      filepath.Base(path),
	}
	outcome, err := w.analysis.Analyze(ctx, state)
	if errors.Is(err, ErrAnalysisInFlight) {
		w.logger.Info("analysis in flight, skipping change", zap.String("path", path))
		return
	}
	w.emit(path, outcome, err)
}

func (w *WatchService) emit(path string, outcome *RunOutcome, err error) {
	if w.OnResult != nil {
		w.OnResult(path, outcome, err)
	}
}
