package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 3 * time.Second

// Pinger is anything the readiness probe can check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves GET /health and GET /health/ready.
type HealthHandler struct {
	storeName string
	store     Pinger
}

// NewHealthHandler returns the health endpoints for store. A nil store makes readiness
// equivalent to liveness.
func NewHealthHandler(storeName string, store Pinger) *HealthHandler {
	return &HealthHandler{storeName: storeName, store: store}
}

type healthStatus struct {
	Status string `json:"status"`
	Store  string `json:"store,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthStatus{Status: "ok"})
}

// Readiness reports 503 while the store does not answer a ping.
func (h *HealthHandler) Readiness(c echo.Context) error {
	if h.store == nil {
		return h.Liveness(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, healthStatus{
			Status: "degraded",
			Store:  h.storeName,
			Error:  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, healthStatus{Status: "ok", Store: h.storeName})
}
