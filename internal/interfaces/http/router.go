// Package http assembles the gin engine: repositories, use cases, handlers,
// middleware and routes.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUC "modportal/internal/application/catalog/usecases"
	"modportal/internal/application/export"
	appnotification "modportal/internal/application/notification"
	ticketUC "modportal/internal/application/ticket/usecases"
	domainnotification "modportal/internal/domain/notification"
	"modportal/internal/infrastructure/auth"
	"modportal/internal/infrastructure/config"
	"modportal/internal/infrastructure/mail"
	"modportal/internal/infrastructure/ratelimit"
	"modportal/internal/infrastructure/repository"
	"modportal/internal/infrastructure/storage"
	"modportal/internal/interfaces/http/handlers"
	"modportal/internal/interfaces/http/middleware"
	"modportal/internal/interfaces/http/routes"
	sharedauth "modportal/internal/shared/auth"
	"modportal/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
}

func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.NewLogger()

	documents, err := storage.NewDocumentStore(cfg.Uploads.Dir)
	if err != nil {
		return nil, err
	}

	// Repositories
	ticketRepo := repository.NewTicketRepository(db)
	typeRepo := repository.NewTypeRepository(db)
	assigneeRepo := repository.NewAssigneeRepository(db)

	// Guards and sessions
	portalGuard := sharedauth.NewGuard(cfg.Secrets.Portal)
	adminGuard := sharedauth.NewGuard(cfg.Secrets.Admin)
	sessions := auth.NewSessionService(cfg.Session.JWTSecret, cfg.Session.ExpHours)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}
	limits := ratelimit.Config{
		AttemptsPerMinute: cfg.Redis.LoginPerMinute,
		AttemptsPerHour:   cfg.Redis.LoginPerHour,
	}

	// Notification pipeline: desktop bridge and SMTP relay, ordered by
	// preference.
	smtpChannel := mail.NewSMTPChannel(mail.SMTPConfig{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.SMTPUser,
		Password: cfg.Mail.SMTPPassword,
	})
	desktopChannel := mail.NewDesktopChannel(cfg.Mail.DesktopCommand)

	var channels []domainnotification.Channel
	if cfg.Mail.PreferDesktop {
		channels = []domainnotification.Channel{desktopChannel, smtpChannel}
	} else {
		channels = []domainnotification.Channel{smtpChannel, desktopChannel}
	}

	composer := appnotification.NewComposer(&cfg.Mail, cfg.Server.BaseURL)
	dispatcher := appnotification.NewDispatcher(channels,
		time.Duration(cfg.Mail.SendTimeoutSeconds)*time.Second)
	notifier := appnotification.NewService(composer, dispatcher, documents)

	// Use cases
	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, typeRepo, assigneeRepo, documents, notifier, log)
	closeTicketUC := ticketUC.NewCloseTicketUseCase(ticketRepo, notifier, log)
	deleteTicketUC := ticketUC.NewDeleteTicketUseCase(ticketRepo, documents, adminGuard, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, log)
	searchTicketsUC := ticketUC.NewSearchTicketsUseCase(ticketRepo, log)
	getDashboardUC := ticketUC.NewGetDashboardUseCase(ticketRepo, log)

	addTypeUC := catalogUC.NewAddTypeUseCase(typeRepo, adminGuard, log)
	deleteTypeUC := catalogUC.NewDeleteTypeUseCase(typeRepo, adminGuard, log)
	listTypesUC := catalogUC.NewListTypesUseCase(typeRepo, log)
	upsertAssigneeUC := catalogUC.NewUpsertAssigneeUseCase(assigneeRepo, adminGuard, log)
	deleteAssigneeUC := catalogUC.NewDeleteAssigneeUseCase(assigneeRepo, adminGuard, log)
	listAssigneesUC := catalogUC.NewListAssigneesUseCase(assigneeRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(portalGuard, adminGuard, sessions, limiter, limits, &cfg.Session)
	dashboardHandler := handlers.NewDashboardHandler(getDashboardUC)
	ticketHandler := handlers.NewTicketHandler(createTicketUC, closeTicketUC, deleteTicketUC, getTicketUC, searchTicketsUC)
	formHandler := handlers.NewFormHandler(listTypesUC, listAssigneesUC)
	catalogHandler := handlers.NewCatalogHandler(addTypeUC, deleteTypeUC, listTypesUC, upsertAssigneeUC, deleteAssigneeUC, listAssigneesUC)
	exportHandler := handlers.NewExportHandler(searchTicketsUC, export.NewExporter())
	uploadsHandler := handlers.NewUploadsHandler(documents)

	sessionMiddleware := middleware.NewSessionMiddleware(sessions, cfg.Session.CookieName, log)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{AuthHandler: authHandler})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		DashboardHandler:  dashboardHandler,
		TicketHandler:     ticketHandler,
		FormHandler:       formHandler,
		ExportHandler:     exportHandler,
		UploadsHandler:    uploadsHandler,
		SessionMiddleware: sessionMiddleware,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		CatalogHandler:    catalogHandler,
		SessionMiddleware: sessionMiddleware,
	})

	return &Router{
		engine: engine,
		cfg:    cfg,
		log:    log,
	}, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Run() error {
	addr := r.cfg.Server.GetAddr()
	r.log.Infow("starting http server", "addr", addr)
	return r.engine.Run(addr)
}
