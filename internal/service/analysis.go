package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/Harshitk-cp/veritas/internal/notify"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrAnalysisInFlight = errors.New("analysis already in progress")

type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunNoClaims  RunStatus = "no_claims"
)

// RunOutcome is the terminal state of one analysis run. Result is set only
// when Status is RunCompleted.
type RunOutcome struct {
	Status  RunStatus                  `json:"status"`
	Session string                     `json:"session"`
	Claims  []string                   `json:"claims,omitempty"`
	Result  *domain.VerificationResult `json:"result,omitempty"`
}

// AnalysisService drives the two-phase detection protocol: extract claims,
// then verify them against web sources in the same session. At most one run
// is in flight at a time.
type AnalysisService struct {
	detector domain.DetectorClient
	notifier notify.Notifier
	history  *HistoryService
	logger   *zap.Logger

	busy atomic.Bool
}

func NewAnalysisService(detector domain.DetectorClient, notifier notify.Notifier, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		detector: detector,
		notifier: notifier,
		logger:   logger,
	}
}

// SetHistory wires an optional history service; completed runs are recorded
// when set.
func (s *AnalysisService) SetHistory(h *HistoryService) {
	s.history = h
}

// Busy reports whether an analysis run is in flight.
func (s *AnalysisService) Busy() bool {
	return s.busy.Load()
}

// Analyze resolves the input state and runs the two-phase protocol on the
// selected text.
func (s *AnalysisService) Analyze(ctx context.Context, state domain.InputState) (*RunOutcome, error) {
	text, err := ResolveInput(state)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, text, state.SourceLabel())
}

// Run executes one analysis of text. The protocol is strictly sequential:
// the verification call is issued only after extraction resolves, against
// the same session. Every failure is terminal for the run and reported
// through the notifier; there is no retry. The busy flag is released on
// every exit path.
func (s *AnalysisService) Run(ctx context.Context, text, source string) (*RunOutcome, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrAnalysisInFlight
	}
	defer s.busy.Store(false)

	started := time.Now()
	session := uuid.NewString()
	log := s.logger.With(zap.String("session", session), zap.String("source", source))

	s.notifier.Notify(notify.LevelInfo, "Analyzing text and extracting claims...")
	log.Info("extraction started", zap.Int("chars", len(text)))

	extraction, err := s.detector.ExtractClaims(ctx, session, text)
	if err != nil {
		s.fail(log, err)
		return nil, err
	}

	if !extraction.Success || len(extraction.Claims) == 0 {
		// A valid empty outcome, not an error. Verification never runs.
		s.notifier.Notify(notify.LevelInfo, "No verifiable claims found")
		log.Info("no claims extracted")
		return &RunOutcome{Status: RunNoClaims, Session: session}, nil
	}

	s.notifier.Notify(notify.LevelInfo,
		fmt.Sprintf("Found %d claims, verifying against web sources...", len(extraction.Claims)))
	log.Info("verification started", zap.Int("claims", len(extraction.Claims)))

	result, err := s.detector.VerifyClaims(ctx, session)
	if err != nil {
		s.fail(log, err)
		return nil, err
	}
	if !result.Success {
		serr := &domain.ServiceError{Phase: domain.PhaseVerify, Message: result.Error}
		s.fail(log, serr)
		return nil, serr
	}

	outcome := &RunOutcome{
		Status:  RunCompleted,
		Session: session,
		Claims:  extraction.Claims,
		Result:  result,
	}

	s.notifier.Notify(notify.LevelSuccess,
		fmt.Sprintf("Analysis complete: trust score %.1f%%", result.OverallTrustScore))
	log.Info("analysis completed",
		zap.Int("claims", len(extraction.Claims)),
		zap.Float64("trust_score", result.OverallTrustScore),
		zap.Duration("elapsed", time.Since(started)))

	s.record(ctx, session, source, len(text), result)

	return outcome, nil
}

func (s *AnalysisService) fail(log *zap.Logger, err error) {
	s.notifier.Notify(notify.LevelError, err.Error())
	log.Error("analysis failed", zap.Error(err))
}

// record persists the run when history is wired. Store failures degrade to
// a log line and do not fail the run.
func (s *AnalysisService) record(ctx context.Context, session, source string, chars int, result *domain.VerificationResult) {
	if s.history == nil {
		return
	}

	view := Aggregate(result)
	rec := &domain.AnalysisRecord{
		Session:        session,
		InputSource:    source,
		InputChars:     chars,
		TotalClaims:    view.Summary.TotalClaims,
		Verified:       view.Summary.Verified,
		Hallucinations: view.Summary.Hallucinations,
		Uncertain:      view.Summary.Uncertain,
		TrustScore:     view.Summary.TrustScore,
		AvgConfidence:  view.Summary.AvgConfidence,
		SourcesChecked: view.Summary.SourcesChecked,
		ProcessingTime: view.Summary.ProcessingTime,
		Result:         result,
		Report:         Serialize(result),
	}
	if err := s.history.Record(ctx, rec); err != nil {
		s.logger.Warn("history record failed", zap.Error(err))
	}
}
