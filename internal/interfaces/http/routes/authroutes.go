package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "reinkjet/internal/interfaces/http/handlers/auth"
	"reinkjet/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	// LoginRateLimit guards the credential endpoints. Nil disables limiting.
	LoginRateLimit gin.HandlerFunc
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		if config.LoginRateLimit != nil {
			auth.POST("/register", config.LoginRateLimit, config.AuthHandler.Register)
			auth.POST("/login", config.LoginRateLimit, config.AuthHandler.Login)
		} else {
			auth.POST("/register", config.AuthHandler.Register)
			auth.POST("/login", config.AuthHandler.Login)
		}

		protected := auth.Group("")
		protected.Use(config.AuthMiddleware.RequireAuth())
		{
			protected.GET("/profile", config.AuthHandler.GetProfile)
			protected.PUT("/profile", config.AuthHandler.UpdateProfile)
			protected.PUT("/password", config.AuthHandler.ChangePassword)
		}
	}
}
