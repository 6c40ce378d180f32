// Package http serves liveness, readiness and build info
package http

import (
	"context"
	"net/http"
	"time"

	"huddle/internal/core/version"
	"huddle/internal/modkit/httpkit"
)

// Pinger is any dependency readiness can ping
type Pinger interface {
	Ping(context.Context) error
}

// Deps are the handler dependencies, a nil DB is reported as skipped
type Deps struct {
	Started time.Time
	DB      Pinger
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := handlers(d)
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
}

type handlers Deps

// Health reports liveness and uptime
type Health struct {
	OK      bool   `json:"ok" example:"true"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime_seconds" example:"300"`
}

// Check is one dependency result, status is ok, fail or skipped
type Check struct {
	Name   string `json:"name" example:"pg"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
}

// Ready summarizes readiness, status is ok, degraded or fail
type Ready struct {
	Status string  `json:"status" example:"ok"`
	Checks []Check `json:"checks"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} Health "ok"
// @Router /meta/health [get]
func (h handlers) health(*http.Request) (any, error) {
	return Health{
		OK:      true,
		Started: h.Started.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.Started) / time.Second),
	}, nil
}

// @Summary Readiness with dependency checks
// @Description Degraded when running without a database, commitments then come from injected sources only
// @Tags Meta
// @Produce json
// @Success 200 {object} Ready "ok"
// @Router /meta/ready [get]
func (h handlers) ready(r *http.Request) (any, error) {
	pg := Check{Name: "pg", Status: "skipped"}
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		pg.Status = "ok"
		if err := h.DB.Ping(ctx); err != nil {
			pg.Status, pg.Error = "fail", err.Error()
		}
	}

	status := map[string]string{"ok": "ok", "fail": "fail"}[pg.Status]
	if status == "" {
		status = "degraded"
	}
	return Ready{Status: status, Checks: []Check{pg}}, nil
}

// @Summary Build information
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h handlers) version(*http.Request) (any, error) {
	return version.Info(), nil
}
