package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler creates a health handler that uses ping to check the store.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Live godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HealthHandler) Live(c echo.Context) error {
	return c.String(http.StatusOK, "Server is live!")
}

// Ready godoc
// @Summary Readiness probe, checks the database
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Failure 503 {string} string
// @Router /healthz [get]
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable").SetInternal(err)
	}
	return c.String(http.StatusOK, "ok")
}
