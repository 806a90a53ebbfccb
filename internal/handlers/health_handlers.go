package handlers

import (
	"context"
	"net/http"
	"time"

	"petcare_backend/internal/database"
	"petcare_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	store database.Pinger // nil for the in-memory store
}

func NewHealthHandler(store database.Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports 503 while the store cannot be reached.
func (h *HealthHandler) Readyz(c *gin.Context) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.store.PingContext(ctx); err != nil {
			utils.LogError(err, "Readyz: store ping failed")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusServiceUnavailable, utils.ErrCodeInternalServerError, "Store unavailable", err.Error()))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
