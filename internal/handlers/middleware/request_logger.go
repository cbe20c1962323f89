package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emala/emala-backend/internal/domain/ports"
)

// RequestLogger loga método, caminho, status e duração de cada
// requisição. Ligado apenas em modo de desenvolvimento, como o logger
// de requisições da primeira versão da API.
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(RequestIDContextKey),
		)
	}
}
