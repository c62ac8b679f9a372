package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reinkjet/internal/shared/biztime"
)

type HealthHandler struct {
	db      *gorm.DB
	version string
}

func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	httpStatus := http.StatusOK

	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = "unavailable"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "unavailable"
	}

	if dbStatus != "ok" {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":    status,
		"database":  dbStatus,
		"version":   h.version,
		"timestamp": biztime.NowUTC(),
	})
}
