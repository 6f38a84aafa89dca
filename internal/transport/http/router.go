// Package httptransport assembles the HTTP surface of the application:
// middleware stack, operational endpoints, and the per-module handlers.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tipline/internal/platform/metrics"
	"tipline/pkg/platform/httputil"
	"tipline/pkg/platform/middleware/requestid"
	"tipline/pkg/platform/middleware/requesttime"
	"tipline/pkg/requestcontext"
)

// Registrar mounts a module's routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// RouterConfig carries everything NewRouter needs. Metrics is optional;
// HealthChecks are keyed by dependency name for the health payload.
type RouterConfig struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Handlers     []Registrar
	HealthChecks map[string]HealthCheck
}

// NewRouter wires the shared middleware stack, the operational endpoints,
// and every module handler into a single http.Handler.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Get("/healthz", healthHandler(cfg.Logger, cfg.HealthChecks))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, h := range cfg.Handlers {
		h.Register(r)
	}

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestcontext.RequestID(r.Context()),
			)
		})
	}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(logger *slog.Logger, checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		status := http.StatusOK
		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
		}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.WarnContext(ctx, "health check failed",
					"dependency", name,
					"error", err,
				)
				resp.Checks[name] = "unavailable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}

		httputil.WriteJSON(w, status, resp)
	}
}
