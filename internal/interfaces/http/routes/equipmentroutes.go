package routes

import (
	"github.com/gin-gonic/gin"

	equipmenthandlers "reinkjet/internal/interfaces/http/handlers/equipment"
	"reinkjet/internal/interfaces/http/middleware"
)

type EquipmentRouteConfig struct {
	EquipmentHandler *equipmenthandlers.EquipmentHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupEquipmentRoutes(api *gin.RouterGroup, config *EquipmentRouteConfig) {
	equipment := api.Group("/equipment")
	equipment.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths must be registered before /:id to avoid route conflicts
		equipment.GET("", config.EquipmentHandler.ListEquipment)
		equipment.POST("", config.EquipmentHandler.CreateEquipment)
		equipment.GET("/stats", config.EquipmentHandler.GetStats)
		equipment.GET("/locations", config.EquipmentHandler.ListLocations)
		equipment.GET("/types", config.EquipmentHandler.ListTypes)

		equipment.GET("/:id", config.EquipmentHandler.GetEquipment)
	}
}
