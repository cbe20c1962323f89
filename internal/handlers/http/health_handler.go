package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emala/emala-backend/internal/handlers/dto"
)

// Health responde o health check da API
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   dto.T(c, "health.running"),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
