package middleware

import (
	"log/slog"

	"condo-reserve/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Residents reach the booking API through the condo portal; any other
// origin is opt-in through configuration.
var portalOrigins = []string{"http://localhost:3000", "http://localhost:8080"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = portalOrigins
	}

	slog.Info("CORS middleware initialized", "AllowOrigins", origins)
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
