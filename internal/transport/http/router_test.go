package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipline/pkg/platform/middleware/requestid"
	"tipline/pkg/requestcontext"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type pingHandler struct{}

func (pingHandler) Register(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRouterHealth(t *testing.T) {
	t.Run("healthy dependencies", func(t *testing.T) {
		router := NewRouter(RouterConfig{
			Logger: discardLogger(),
			HealthChecks: map[string]HealthCheck{
				"postgres": func(ctx context.Context) error { return nil },
			},
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp healthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Checks["postgres"])
	})

	t.Run("failing dependency degrades the check", func(t *testing.T) {
		router := NewRouter(RouterConfig{
			Logger: discardLogger(),
			HealthChecks: map[string]HealthCheck{
				"postgres": func(ctx context.Context) error { return nil },
				"redis":    func(ctx context.Context) error { return errors.New("connection refused") },
			},
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp healthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "unavailable", resp.Checks["redis"])
		assert.Equal(t, "ok", resp.Checks["postgres"])
	})
}

func TestRouterMountsHandlers(t *testing.T) {
	router := NewRouter(RouterConfig{
		Logger:   discardLogger(),
		Handlers: []Registrar{pingHandler{}},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterRequestID(t *testing.T) {
	var seen string
	handler := registrarFunc(func(r chi.Router) {
		r.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
			seen = requestcontext.RequestID(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	})

	router := NewRouter(RouterConfig{Logger: discardLogger(), Handlers: []Registrar{handler}})

	t.Run("honors an incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set(requestid.Header, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", w.Header().Get(requestid.Header))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(requestid.Header))
	})
}

func TestRouterExposesMetrics(t *testing.T) {
	router := NewRouter(RouterConfig{Logger: discardLogger()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

type registrarFunc func(r chi.Router)

func (f registrarFunc) Register(r chi.Router) { f(r) }
