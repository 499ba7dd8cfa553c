package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// StoreStatus reports on the backing store
type StoreStatus interface {
	Ping(ctx context.Context) error
	Driver() string
	SchemaVersion(ctx context.Context) (string, error)
}

// HealthHandler serves the liveness probe
type HealthHandler struct {
	store  StoreStatus
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(store StoreStatus, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Health handles GET /health. An unreachable store answers 503.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	resp := dto.HealthResponse{Status: "ok", Driver: h.store.Driver()}

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		resp.Status = "unavailable"
		resp.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	// The memory store has no schema version
	if version, err := h.store.SchemaVersion(ctx); err == nil {
		resp.SchemaVersion = version
	}
	c.JSON(http.StatusOK, resp)
}
