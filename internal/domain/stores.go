package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is a persisted analysis run. Result holds the full
// verification payload; Report holds the rendered text so past reports
// can be replayed byte-for-byte.
type AnalysisRecord struct {
	ID             uuid.UUID           `json:"id"`
	Session        string              `json:"session"`
	InputSource    string              `json:"input_source"`
	InputChars     int                 `json:"input_chars"`
	TotalClaims    int                 `json:"total_claims"`
	Verified       int                 `json:"verified"`
	Hallucinations int                 `json:"hallucinations"`
	Uncertain      int                 `json:"uncertain"`
	TrustScore     float64             `json:"trust_score"`
	AvgConfidence  float64             `json:"avg_confidence"`
	SourcesChecked int                 `json:"sources_checked"`
	ProcessingTime float64             `json:"processing_time"`
	Result         *VerificationResult `json:"result,omitempty"`
	Report         string              `json:"report,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type HistoryStore interface {
	Create(ctx context.Context, r *AnalysisRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error)
	List(ctx context.Context, limit int) ([]AnalysisRecord, error)
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
}
