package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reinkjet/internal/infrastructure/config"
	"reinkjet/internal/interfaces/http/middleware"
	"reinkjet/internal/interfaces/http/routes"
	"reinkjet/internal/shared/logger"
)

const (
	loginRateLimitPerMinute = 10
	loginRateLimitPerHour   = 100
)

// Router owns the gin engine and the HTTP server lifecycle.
type Router struct {
	engine *gin.Engine
	server *http.Server
	cfg    *config.Config
	logger logger.Interface
}

func NewRouter(cfg *config.Config, container *Container) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	log := logger.NewLogger()

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", container.HealthHandler.Check)

	api := engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    container.AuthHandler,
		AuthMiddleware: container.AuthMiddleware,
		LoginRateLimit: container.LoginRateLimit(loginRateLimitPerMinute, loginRateLimitPerHour),
	})
	routes.SetupEquipmentRoutes(api, &routes.EquipmentRouteConfig{
		EquipmentHandler: container.EquipmentHandler,
		AuthMiddleware:   container.AuthMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  container.TicketHandler,
		AuthMiddleware: container.AuthMiddleware,
	})
	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: container.NotificationHandler,
		AuthMiddleware:      container.AuthMiddleware,
	})

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start runs the HTTP server until the listener fails or Shutdown is called.
func (r *Router) Start() error {
	r.server = &http.Server{
		Addr:              r.cfg.Server.GetAddr(),
		Handler:           r.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	r.logger.Infow("starting HTTP server", "addr", r.server.Addr)

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	r.logger.Infow("shutting down HTTP server")
	return r.server.Shutdown(ctx)
}
