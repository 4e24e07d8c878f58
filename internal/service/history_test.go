package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errRecordMissing = errors.New("record not found")

// memHistoryStore mimics the database store: Create fills in ID and
// CreatedAt, List honors the limit it is given.
type memHistoryStore struct {
	mu        sync.Mutex
	records   []domain.AnalysisRecord
	createErr error
	lastLimit int
}

func (s *memHistoryStore) Create(_ context.Context, r *domain.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	r.ID = uuid.New()
	r.CreatedAt = time.Now().UTC()
	s.records = append(s.records, *r)
	return nil
}

func (s *memHistoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, errRecordMissing
}

func (s *memHistoryStore) List(_ context.Context, limit int) ([]domain.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLimit = limit
	if limit > len(s.records) {
		limit = len(s.records)
	}
	out := make([]domain.AnalysisRecord, limit)
	copy(out, s.records)
	return out, nil
}

func (s *memHistoryStore) DeleteOlderThan(_ context.Context, age time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-age)
	var kept []domain.AnalysisRecord
	var deleted int64
	for _, r := range s.records {
		if r.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return deleted, nil
}

func TestHistoryService_RecordAndGet(t *testing.T) {
	store := &memHistoryStore{}
	svc := NewHistoryService(store, zap.NewNop())

	rec := &domain.AnalysisRecord{
		Session:     "sess-1",
		InputSource: "text",
		TotalClaims: 3,
		TrustScore:  66.7,
		Report:      "report text",
	}
	if err := svc.Record(context.Background(), rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Fatal("store should assign an ID on create")
	}

	got, err := svc.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Session != "sess-1" || got.TotalClaims != 3 {
		t.Errorf("Get returned wrong record: %+v", got)
	}

	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, errRecordMissing) {
		t.Errorf("expected store error for unknown id, got %v", err)
	}
}

func TestHistoryService_ListClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero", 0, DefaultHistoryLimit},
		{"negative", -5, DefaultHistoryLimit},
		{"over max", MaxHistoryLimit + 1, DefaultHistoryLimit},
		{"in range", 50, 50},
		{"at max", MaxHistoryLimit, MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memHistoryStore{}
			svc := NewHistoryService(store, zap.NewNop())

			if _, err := svc.List(context.Background(), tt.limit); err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if store.lastLimit != tt.want {
				t.Errorf("store queried with limit %d, want %d", store.lastLimit, tt.want)
			}
		})
	}
}

func TestHistoryService_Prune(t *testing.T) {
	store := &memHistoryStore{}
	svc := NewHistoryService(store, zap.NewNop())

	for _, session := range []string{"old", "fresh"} {
		rec := &domain.AnalysisRecord{Session: session}
		if err := svc.Record(context.Background(), rec); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	store.records[0].CreatedAt = time.Now().Add(-48 * time.Hour)

	deleted, err := svc.Prune(context.Background(), 24*time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	remaining, err := svc.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Session != "fresh" {
		t.Errorf("expected only the fresh record to remain, got %+v", remaining)
	}
}

func TestHistoryService_PruneNothing(t *testing.T) {
	store := &memHistoryStore{}
	svc := NewHistoryService(store, zap.NewNop())

	deleted, err := svc.Prune(context.Background(), time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0", deleted)
	}
}
