package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader é o header propagado com o identificador da requisição
const RequestIDHeader = "X-Request-ID"

// RequestIDContextKey é a chave do request id no contexto do Gin
const RequestIDContextKey = "request_id"

// RequestID atribui um identificador único a cada requisição, reusando
// o que o cliente mandar no header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
