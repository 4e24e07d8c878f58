package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnalysisStore struct {
	db *pgxpool.Pool
}

func NewAnalysisStore(db *pgxpool.Pool) *AnalysisStore {
	return &AnalysisStore{db: db}
}

func (s *AnalysisStore) Create(ctx context.Context, r *domain.AnalysisRecord) error {
	var resultJSON []byte
	if r.Result != nil {
		var err error
		resultJSON, err = json.Marshal(r.Result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
	}

	return s.db.QueryRow(ctx,
		`INSERT INTO analysis_runs (
			session, input_source, input_chars,
			total_claims, verified, hallucinations, uncertain,
			trust_score, avg_confidence, sources_checked, processing_time,
			result, report
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13
		) RETURNING id, created_at`,
		r.Session, r.InputSource, r.InputChars,
		r.TotalClaims, r.Verified, r.Hallucinations, r.Uncertain,
		r.TrustScore, r.AvgConfidence, r.SourcesChecked, r.ProcessingTime,
		resultJSON, r.Report,
	).Scan(&r.ID, &r.CreatedAt)
}

func (s *AnalysisStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AnalysisRecord, error) {
	r := &domain.AnalysisRecord{}
	var resultJSON []byte

	err := s.db.QueryRow(ctx,
		`SELECT id, session, input_source, input_chars,
			total_claims, verified, hallucinations, uncertain,
			trust_score, avg_confidence, sources_checked, processing_time,
			result, report, created_at
		FROM analysis_runs WHERE id = $1`,
		id,
	).Scan(
		&r.ID, &r.Session, &r.InputSource, &r.InputChars,
		&r.TotalClaims, &r.Verified, &r.Hallucinations, &r.Uncertain,
		&r.TrustScore, &r.AvgConfidence, &r.SourcesChecked, &r.ProcessingTime,
		&resultJSON, &r.Report, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(resultJSON) > 0 {
		if err := json.Unmarshal(resultJSON, &r.Result); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
	}

	return r, nil
}

// List returns summary rows, newest first. The full result and report are
// left unloaded; GetByID fetches them for a single run.
func (s *AnalysisStore) List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, session, input_source, input_chars,
			total_claims, verified, hallucinations, uncertain,
			trust_score, avg_confidence, sources_checked, processing_time,
			created_at
		FROM analysis_runs
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AnalysisRecord
	for rows.Next() {
		var r domain.AnalysisRecord
		err := rows.Scan(
			&r.ID, &r.Session, &r.InputSource, &r.InputChars,
			&r.TotalClaims, &r.Verified, &r.Hallucinations, &r.Uncertain,
			&r.TrustScore, &r.AvgConfidence, &r.SourcesChecked, &r.ProcessingTime,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *AnalysisStore) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM analysis_runs WHERE created_at < $1`,
		time.Now().Add(-age),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Verify interface compliance at compile time
var _ domain.HistoryStore = (*AnalysisStore)(nil)
