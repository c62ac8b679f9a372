package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountusecases "reinkjet/internal/application/account/usecases"
	equipmentusecases "reinkjet/internal/application/equipment/usecases"
	notificationusecases "reinkjet/internal/application/notification/usecases"
	ticketusecases "reinkjet/internal/application/ticket/usecases"
	"reinkjet/internal/infrastructure/auth"
	"reinkjet/internal/infrastructure/config"
	"reinkjet/internal/infrastructure/email"
	"reinkjet/internal/infrastructure/ratelimit"
	"reinkjet/internal/infrastructure/repository"
	"reinkjet/internal/infrastructure/storage"
	authhandlers "reinkjet/internal/interfaces/http/handlers/auth"
	equipmenthandlers "reinkjet/internal/interfaces/http/handlers/equipment"
	healthhandlers "reinkjet/internal/interfaces/http/handlers/health"
	notificationhandlers "reinkjet/internal/interfaces/http/handlers/notification"
	tickethandlers "reinkjet/internal/interfaces/http/handlers/ticket"
	"reinkjet/internal/interfaces/http/middleware"
	"reinkjet/internal/shared/db"
	"reinkjet/internal/shared/logger"
	"reinkjet/internal/shared/services/markdown"
)

// Container wires repositories, services, use cases and handlers for the
// HTTP server.
type Container struct {
	AuthHandler         *authhandlers.AuthHandler
	EquipmentHandler    *equipmenthandlers.EquipmentHandler
	TicketHandler       *tickethandlers.TicketHandler
	NotificationHandler *notificationhandlers.NotificationHandler
	HealthHandler       *healthhandlers.HealthHandler

	AuthMiddleware *middleware.AuthMiddleware
	RedisClient    *redis.Client
}

func NewContainer(cfg *config.Config, database *gorm.DB, version string) (*Container, error) {
	log := logger.NewLogger()

	// Repositories
	accountRepo := repository.NewAccountRepository(database)
	equipmentRepo := repository.NewEquipmentRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)

	// Infrastructure services
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	txManager := db.NewTransactionManager(database)

	sender := email.NewSMTPSender(cfg.Email)
	notifier := email.NewNotifier(sender, cfg.Email, markdown.NewMarkdownService(), log)

	fileStorage, err := storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.MaxSizeByte)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize attachment storage: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// Account use cases
	registerUC := accountusecases.NewRegisterAccountUseCase(accountRepo, hasher, jwtService, log)
	authenticateUC := accountusecases.NewAuthenticateAccountUseCase(accountRepo, hasher, jwtService, log)
	getProfileUC := accountusecases.NewGetProfileUseCase(accountRepo, log)
	updateProfileUC := accountusecases.NewUpdateProfileUseCase(accountRepo, log)
	changePasswordUC := accountusecases.NewChangePasswordUseCase(accountRepo, hasher, log)

	// Equipment use cases
	listEquipmentUC := equipmentusecases.NewListEquipmentUseCase(equipmentRepo, log)
	getEquipmentUC := equipmentusecases.NewGetEquipmentUseCase(equipmentRepo, log)
	equipmentStatsUC := equipmentusecases.NewGetEquipmentStatsUseCase(equipmentRepo, log)
	listLocationsUC := equipmentusecases.NewListLocationsUseCase(equipmentRepo, log)
	listTypesUC := equipmentusecases.NewListTypesUseCase(equipmentRepo, log)
	createEquipmentUC := equipmentusecases.NewCreateEquipmentUseCase(equipmentRepo, log)

	// Ticket use cases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, equipmentRepo, notifier, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, attachmentRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	closeTicketUC := ticketusecases.NewCloseTicketUseCase(ticketRepo, log)
	rateTicketUC := ticketusecases.NewRateTicketUseCase(ticketRepo, log)
	addAttachmentUC := ticketusecases.NewAddAttachmentUseCase(ticketRepo, attachmentRepo, fileStorage, txManager, log)
	ticketStatsUC := ticketusecases.NewGetTicketStatsUseCase(ticketRepo, log)

	// Notification use cases
	quoteRequestUC := notificationusecases.NewSendQuoteRequestUseCase(notifier, log)
	contactFormUC := notificationusecases.NewSendContactFormUseCase(notifier, log)
	ticketNotificationUC := notificationusecases.NewSendTicketNotificationUseCase(notifier, log)
	testEmailUC := notificationusecases.NewSendTestEmailUseCase(notifier, log)

	return &Container{
		AuthHandler: authhandlers.NewAuthHandler(
			registerUC, authenticateUC, getProfileUC, updateProfileUC, changePasswordUC),
		EquipmentHandler: equipmenthandlers.NewEquipmentHandler(
			listEquipmentUC, getEquipmentUC, equipmentStatsUC, listLocationsUC, listTypesUC, createEquipmentUC),
		TicketHandler: tickethandlers.NewTicketHandler(
			createTicketUC, getTicketUC, listTicketsUC, updateTicketUC,
			closeTicketUC, rateTicketUC, addAttachmentUC, ticketStatsUC, getProfileUC),
		NotificationHandler: notificationhandlers.NewNotificationHandler(
			quoteRequestUC, contactFormUC, ticketNotificationUC, testEmailUC),
		HealthHandler: healthhandlers.NewHealthHandler(database, version),

		AuthMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		RedisClient:    redisClient,
	}, nil
}

// LoginRateLimit builds the middleware guarding the credential endpoints.
// Returns nil when redis is not configured, which disables limiting.
func (c *Container) LoginRateLimit(perMinute, perHour int) gin.HandlerFunc {
	if c.RedisClient == nil {
		return nil
	}
	limiter := ratelimit.NewRedisRateLimiter(c.RedisClient)
	return middleware.NewRateLimiter(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: perMinute,
		RequestsPerHour:   perHour,
	}, "login").Limit()
}
