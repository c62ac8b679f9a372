package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "reinkjet/internal/interfaces/http/handlers/notification"
	"reinkjet/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	notifications := api.Group("/notifications")
	{
		// Quote and contact endpoints serve the public site, no auth.
		notifications.POST("/quote", config.NotificationHandler.SendQuoteRequest)
		notifications.POST("/contact", config.NotificationHandler.SendContactForm)

		notifications.POST("/ticket",
			config.AuthMiddleware.RequireAuth(),
			config.NotificationHandler.SendTicketNotification)
		notifications.POST("/test",
			config.AuthMiddleware.RequireAuth(),
			config.NotificationHandler.SendTestEmail)
	}
}
