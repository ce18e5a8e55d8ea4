package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-intent/internal/middleware"
	"voice-intent/pkg/log"
	"voice-intent/pkg/response"
)

func newTestServer(t *testing.T, checks ...ReadinessCheck) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        "test",
		Environment: "test",
		Middleware:  middleware.New(log.NewNop(), 0),
		Readiness:   checks,
		Stats:       func() map[string]any { return map[string]any{"sessions": 2} },
	})
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		l    log.Logger
		cfg  Config
	}{
		{name: "no logger", cfg: Config{Port: 1, Mode: "test"}},
		{name: "no mode", l: log.NewNop(), cfg: Config{Port: 1}},
		{name: "no port", l: log.NewNop(), cfg: Config{Mode: "test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.l, tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := get(srv, path)
			require.Equal(t, http.StatusOK, w.Code)

			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, ServiceName, resp.Data.(map[string]any)["service"])
		})
	}

	t.Run("/metrics", func(t *testing.T) {
		w := get(srv, "/metrics")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "go_goroutines"))
	})

	t.Run("request id header", func(t *testing.T) {
		assert.NotEmpty(t, get(srv, "/health").Header().Get(middleware.HeaderRequestID))
	})
}

func TestHealth_Stats(t *testing.T) {
	w := get(newTestServer(t), "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	stats := resp.Data.(map[string]any)["stats"].(map[string]any)
	assert.EqualValues(t, 2, stats["sessions"])
}

func TestReadyCheck_Failing(t *testing.T) {
	srv := newTestServer(t,
		ReadinessCheck{Name: "cache", Check: func(context.Context) error { return nil }},
		ReadinessCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
	)

	w := get(srv, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "redis")
	assert.Contains(t, w.Body.String(), "connection refused")
	assert.NotContains(t, w.Body.String(), `"cache"`)
}

func TestReadyCheck_UsesDeadline(t *testing.T) {
	srv := newTestServer(t, ReadinessCheck{Name: "cache", Check: func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			return errors.New("no deadline")
		}
		return nil
	}})

	assert.Equal(t, http.StatusOK, get(srv, "/ready").Code)
}

func TestIntentRoutesSkippedWithoutHandler(t *testing.T) {
	w := get(newTestServer(t), "/api/v1/intent/functions?device_id=dev-1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
