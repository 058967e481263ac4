package routes

import (
	"obradash/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

// addAuthRoutes mounts the endpoints that work without a session. Logout is public
// so that a stale cookie can always be cleared.
func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
	}
}

func addSessionAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST(PathAuth+"/sync", h.Sync)
}
