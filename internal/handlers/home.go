package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index answers the liveness check
func (h *HomeHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, "hello world")
}
