package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Harshitk-cp/veritas/internal/api/handlers"
	mw "github.com/Harshitk-cp/veritas/internal/api/middleware"
	"github.com/Harshitk-cp/veritas/internal/buildconfig"
	"github.com/Harshitk-cp/veritas/internal/config"
	"github.com/Harshitk-cp/veritas/internal/detector"
	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/Harshitk-cp/veritas/internal/notify"
	"github.com/Harshitk-cp/veritas/internal/service"
	"github.com/Harshitk-cp/veritas/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App holds the router and shared state for the gateway.
type App struct {
	Router   *chi.Mux
	Analysis *service.AnalysisService

	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp assembles the HTTP gateway in front of the detection service. db
// may be nil; the history endpoints are disabled without it.
func NewApp(client domain.DetectorClient, db *pgxpool.Pool, logger *zap.Logger) *App {
	notifier := notify.Notifier(notify.NewLog(logger))
	if url := config.WebhookURL(); url != "" {
		if wh, err := notify.NewWebhook(url, logger); err != nil {
			logger.Warn("webhook notifier disabled", zap.Error(err))
		} else {
			notifier = notify.Multi{notifier, wh}
		}
	}

	analysisSvc := service.NewAnalysisService(client, notifier, logger)

	var historySvc *service.HistoryService
	if db != nil {
		historySvc = service.NewHistoryService(store.NewAnalysisStore(db), logger)
		analysisSvc.SetHistory(historySvc)
	}

	analysisHandler := handlers.NewAnalysisHandler(analysisSvc, historySvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Analysis:  analysisSvc,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics (no auth)
	r.Get("/health", healthHandler(client, db))
	r.Get("/metrics", app.metricsHandler())

	// Authenticated routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(config.GatewayAPIKey()))

		r.Route("/analyses", func(r chi.Router) {
			r.Post("/", analysisHandler.Create)
			r.Get("/", analysisHandler.List)
			r.Delete("/", analysisHandler.Prune)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", analysisHandler.GetByID)
				r.Get("/report", analysisHandler.GetReport)
			})
		})
	})

	return app
}

// NewRouter returns just the chi.Mux.
func NewRouter(client domain.DetectorClient, db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(client, db, logger).Router
}

// healthHandler reports degraded when the detection service or the database
// is unreachable.
func healthHandler(client domain.DetectorClient, db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := client.Health(r.Context())
		if err != nil || !status.Healthy() {
			msg := "detection service unhealthy"
			if err != nil {
				msg = err.Error()
			}
			writeHealth(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "error": msg})
			return
		}

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				writeHealth(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}

		writeHealth(w, http.StatusOK, map[string]string{"status": "ok", "detector": status.Status})
	}
}

func writeHealth(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"analysis_busy":  app.Analysis.Busy(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"version":    buildconfig.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure clients and stores satisfy interfaces at compile time.
var (
	_ domain.DetectorClient = (*detector.HTTPClient)(nil)
	_ domain.DetectorClient = (*detector.MockClient)(nil)
	_ domain.HistoryStore   = (*store.AnalysisStore)(nil)
)
