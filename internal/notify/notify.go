package notify

import "go.uber.org/zap"

// Level classifies a notification for rendering.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier receives progress and outcome messages from the analysis
// pipeline. Implementations are fire-and-forget: the pipeline never blocks
// on a notification and never inspects its result.
type Notifier interface {
	Notify(level Level, message string)
}

// Multi fans one notification out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(level Level, message string) {
	for _, n := range m {
		n.Notify(level, message)
	}
}

// Log writes notifications to a zap logger.
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Notify(level Level, message string) {
	switch level {
	case LevelError:
		l.logger.Error(message)
	default:
		l.logger.Info(message)
	}
}

// Silent discards notifications.
type Silent struct{}

func (Silent) Notify(Level, string) {}

var (
	_ Notifier = (Multi)(nil)
	_ Notifier = (*Log)(nil)
	_ Notifier = Silent{}
)
