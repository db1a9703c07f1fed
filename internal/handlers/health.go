package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is implemented by stores that can report their connection health
type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthCheck reports whether the store is reachable
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
