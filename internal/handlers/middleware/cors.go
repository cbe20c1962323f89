package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação a partir da lista de origens
// permitidas separadas por vírgula (ex.: "http://localhost:5173,*")
func CORS(allowedOrigins string) gin.HandlerFunc {
	origins := make([]string, 0)
	allowAll := false

	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			allowAll = true
			continue
		}
		origins = append(origins, o)
	}

	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}

	if allowAll {
		// Credenciais com origem dinâmica: refletir qualquer origem
		config.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		config.AllowOrigins = origins
	}

	return cors.New(config)
}
