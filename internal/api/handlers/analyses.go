package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/Harshitk-cp/veritas/internal/service"
	"github.com/Harshitk-cp/veritas/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AnalysisHandler struct {
	analysis *service.AnalysisService
	history  *service.HistoryService
}

// NewAnalysisHandler wires the analysis endpoints. history may be nil when
// no database is configured; the history endpoints then return 503.
func NewAnalysisHandler(analysis *service.AnalysisService, history *service.HistoryService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, history: history}
}

type createAnalysisRequest struct {
	Text string `json:"text"`
}

func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.analysis.Run(r.Context(), req.Text, "text")
	if err != nil {
		var terr *domain.TransportError
		var serr *domain.ServiceError
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAnalysisInFlight):
			writeError(w, http.StatusConflict, err.Error())
		case errors.As(err, &terr), errors.As(err, &serr):
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "analysis failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

type listAnalysesResponse struct {
	Analyses []domain.AnalysisRecord `json:"analyses"`
	Count    int                     `json:"count"`
}

func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusServiceUnavailable, service.ErrHistoryDisabled.Error())
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	records, err := h.history.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if records == nil {
		records = []domain.AnalysisRecord{}
	}

	writeJSON(w, http.StatusOK, listAnalysesResponse{Analyses: records, Count: len(records)})
}

func (h *AnalysisHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	record, ok := h.fetch(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// GetReport serves the stored plain-text report for one analysis.
func (h *AnalysisHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	record, ok := h.fetch(w, r)
	if !ok {
		return
	}

	report := record.Report
	if report == "" && record.Result != nil {
		report = service.Serialize(record.Result)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}

func (h *AnalysisHandler) Prune(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusServiceUnavailable, service.ErrHistoryDisabled.Error())
		return
	}

	days := 30
	if dayStr := r.URL.Query().Get("older_than_days"); dayStr != "" {
		d, err := strconv.Atoi(dayStr)
		if err != nil || d <= 0 {
			writeError(w, http.StatusBadRequest, "invalid older_than_days")
			return
		}
		days = d
	}

	deleted, err := h.history.Prune(r.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to prune analyses")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// fetch resolves the {id} route param to a stored record, writing the error
// response itself when it returns ok=false.
func (h *AnalysisHandler) fetch(w http.ResponseWriter, r *http.Request) (*domain.AnalysisRecord, bool) {
	if h.history == nil {
		writeError(w, http.StatusServiceUnavailable, service.ErrHistoryDisabled.Error())
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid analysis id")
		return nil, false
	}

	record, err := h.history.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "analysis not found")
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, "failed to get analysis")
		return nil, false
	}

	return record, true
}
