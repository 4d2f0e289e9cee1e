package handler

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// ErrNotReady is reported by a Readiness gate that has not been opened yet.
var ErrNotReady = errors.New("service is not ready")

// Pinger is the minimal contract the readiness probe needs.
// Kept local to the handler package so tests can stub it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Readiness is a Pinger that fails until MarkReady is called.
// The server opens it once the listener is up and closes it when shutdown begins.
type Readiness struct {
	ready atomic.Bool
}

func (r *Readiness) MarkReady()    { r.ready.Store(true) }
func (r *Readiness) MarkNotReady() { r.ready.Store(false) }

func (r *Readiness) Ping(_ context.Context) error {
	if !r.ready.Load() {
		return ErrNotReady
	}
	return nil
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	probe Pinger
}

func NewHealthHandler(probe Pinger) *HealthHandler {
	return &HealthHandler{probe: probe}
}

// Liveness responds OK if the process is up; it doesn't check anything else.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness reports 503 while the probe fails.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.probe == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	if err := h.probe.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
