package httpserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"voice-intent/pkg/response"
)

const (
	ServiceName    = "voice-intent"
	ServiceVersion = "1.0.0"

	readyTimeout = 2 * time.Second
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// StatsFunc reports runtime figures shown on /health, e.g. active sessions.
type StatsFunc func() map[string]any

type statusResp struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version string            `json:"version"`
	Stats   map[string]any    `json:"stats,omitempty"`
	Failed  map[string]string `json:"failed,omitempty"`
}

func (srv HTTPServer) status(s string) statusResp {
	return statusResp{Status: s, Service: ServiceName, Version: ServiceVersion}
}

// healthCheck
// @Summary Health check
// @Description Service identity and runtime figures (model, sessions, songs)
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	resp := srv.status("healthy")
	if srv.stats != nil {
		resp.Stats = srv.stats()
	}
	response.OK(c, resp)
}

// readyCheck runs every readiness check concurrently under one deadline.
// @Summary Readiness check
// @Description Ready when every dependency (e.g. the shared intent cache) answers
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Ready"
// @Failure 503 {object} response.Resp "A dependency is not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		failed = map[string]string{}
	)
	var g errgroup.Group
	for _, rc := range srv.readiness {
		g.Go(func() error {
			if err := rc.Check(ctx); err != nil {
				mu.Lock()
				failed[rc.Name] = err.Error()
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failed) > 0 {
		resp := srv.status("not ready")
		resp.Failed = failed
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", failed)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "not ready",
			Data:      resp,
		})
		return
	}

	response.OK(c, srv.status("ready"))
}

// liveCheck
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
