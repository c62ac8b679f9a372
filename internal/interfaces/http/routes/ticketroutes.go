package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "reinkjet/internal/interfaces/http/handlers/ticket"
	"reinkjet/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths must be registered before /:id to avoid route conflicts
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/stats", config.TicketHandler.GetStats)

		tickets.POST("/:id/close", config.TicketHandler.CloseTicket)
		tickets.POST("/:id/rating", config.TicketHandler.RateTicket)
		tickets.POST("/:id/attachments", config.TicketHandler.AddAttachment)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
