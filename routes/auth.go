package routes

import (
	"github.com/Pavan17153/SS/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(d.DB, d.Notifier)) // POST /auth/login
		authGroup.POST("/guest", auth.CreateGuestUser(d.DB))          // POST /auth/guest
	}
}
