package service

import (
	"context"
	"errors"
	"time"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrHistoryDisabled = errors.New("history store not configured")

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// HistoryService records analysis runs for later listing and report replay.
type HistoryService struct {
	store  domain.HistoryStore
	logger *zap.Logger
}

func NewHistoryService(store domain.HistoryStore, logger *zap.Logger) *HistoryService {
	return &HistoryService{store: store, logger: logger}
}

func (s *HistoryService) Record(ctx context.Context, r *domain.AnalysisRecord) error {
	if err := s.store.Create(ctx, r); err != nil {
		return err
	}
	s.logger.Debug("analysis recorded",
		zap.String("id", r.ID.String()),
		zap.String("session", r.Session))
	return nil
}

func (s *HistoryService) Get(ctx context.Context, id uuid.UUID) (*domain.AnalysisRecord, error) {
	return s.store.GetByID(ctx, id)
}

func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = DefaultHistoryLimit
	}
	return s.store.List(ctx, limit)
}

func (s *HistoryService) Prune(ctx context.Context, age time.Duration) (int64, error) {
	deleted, err := s.store.DeleteOlderThan(ctx, age)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.logger.Info("pruned analysis history",
			zap.Int64("deleted", deleted),
			zap.Duration("older_than", age))
	}
	return deleted, nil
}
