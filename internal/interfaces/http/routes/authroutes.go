package routes

import (
	"github.com/gin-gonic/gin"

	"modportal/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.GET("/session", config.AuthHandler.Session)
		auth.POST("/logout", config.AuthHandler.Logout)
	}
}
