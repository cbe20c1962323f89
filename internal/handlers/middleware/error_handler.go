package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/emala/emala-backend/internal/domain/errors"
	"github.com/emala/emala-backend/internal/domain/ports"
	"github.com/emala/emala-backend/internal/handlers/dto"
)

// ErrorHandler é o catch-all de erros: recupera panics e normaliza
// erros anexados via c.Error que nenhum handler respondeu. Toda falha
// vira o envelope {success:false, message, ...}; em desenvolvimento a
// stack acompanha a resposta.
func ErrorHandler(logger ports.Logger, development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := string(debug.Stack())
				logger.Error("panic recovered",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDContextKey),
				)

				response := dto.NewErrorResponse(dto.T(c, "error.internal"))
				if development {
					response.Stack = stack
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, response)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := domainerrors.StatusOf(err)

		logger.Error("request failed",
			"error", err.Error(),
			"status", status,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDContextKey),
		)

		var response dto.Response
		if status == http.StatusInternalServerError {
			// A mensagem do gateway é repassada verbatim no campo error
			response = dto.NewGatewayErrorResponse(dto.T(c, "error.internal"), err)
			if development {
				response.Stack = string(debug.Stack())
			}
		} else {
			// Erros de domínio são message IDs do i18n
			response = dto.NewErrorResponse(dto.T(c, err.Error()))
		}

		c.JSON(status, response)
	}
}

// NoRoute responde 404 para rotas não mapeadas, ecoando o caminho
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.T(c, "error.route_not_found", map[string]interface{}{"Path": c.Request.URL.Path}),
		))
	}
}
