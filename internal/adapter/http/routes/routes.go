package routes

import (
	"context"
	"net/http"

	"obradash/internal/adapter/http/handlers"
	"obradash/internal/adapter/http/middleware"
	"obradash/internal/adapter/persistence/repository"
	"obradash/internal/infrastructure/backend"
	"obradash/internal/infrastructure/database"
	"obradash/internal/infrastructure/logging"
	"obradash/internal/infrastructure/payments"
	"obradash/internal/infrastructure/session"
	"obradash/internal/usecase"
	"obradash/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router needs to mount the /v1 API.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Obra      *handlers.ObraHandler
	Residente *handlers.ResidenteHandler
	Gasto     *handlers.GastoHandler
	Payment   *handlers.SubscriptionPaymentHandler
	Report    *handlers.ReportHandler
}

// Run will start the server
func Run() {
	logger, err := logging.New()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := LoadConfig()
	sessions, err := newSessionManager(cfg, logger)
	if err != nil {
		logger.Fatal("[app][routes] session store init failed", zap.Error(err))
	}

	router := NewRouter(buildHandlers(cfg, sessions, logger), sessions, logger)
	logger.Info("[app][routes] listening", zap.String("port", cfg.Port), zap.String("backend", cfg.BackendBaseURL))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("[app][routes] failed to startup the application", zap.Error(err))
	}
}

func newSessionManager(cfg Config, logger *zap.Logger) (*session.Manager, error) {
	var repo interfaces.ISessionRepository
	switch cfg.SessionStore {
	case SessionStoreMemory:
		logger.Warn("[app][routes] using in-memory sessions; they are lost on restart")
		repo = repository.NewSessionMemoryRepository()
	default:
		ddb, err := database.ConnectDynamoDB(context.Background(), logger)
		if err != nil {
			return nil, err
		}
		repo = repository.NewSessionDynamoRepository(ddb, cfg.SessionsTable)
	}
	return session.NewManager(repo, cfg.SessionTTL, logger), nil
}

func buildHandlers(cfg Config, sessions *session.Manager, logger *zap.Logger) Handlers {
	client := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout, session.ContextTokenSource{}, logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, logger)
	if err != nil {
		logger.Warn("[app][routes] mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	resolver := usecase.NewAssignmentResolver(client, logger)
	spend := usecase.NewSpendAggregator(client, usecase.SpendOptions{ApprovedOnly: cfg.SpendApprovedOnly}, logger)

	return Handlers{
		Auth: handlers.NewAuthHandler(usecase.NewAuthUseCase(client, client, sessions, logger), logger),
		Dashboard: handlers.NewDashboardHandler(
			usecase.NewConstructoraDashboardUseCase(client, client, client, client, client, resolver, spend, logger),
			usecase.NewResidenteDashboardUseCase(client, client, client, client, logger),
			logger,
		),
		Obra:      handlers.NewObraHandler(usecase.NewObraUseCase(client, client, client, resolver, logger), logger),
		Residente: handlers.NewResidenteHandler(usecase.NewResidenteUseCase(client, client, client, resolver, logger), logger),
		Gasto:     handlers.NewGastoHandler(usecase.NewGastoUseCase(client, logger), logger),
		Payment:   handlers.NewSubscriptionPaymentHandler(usecase.NewSubscriptionPaymentUseCase(client, paymentGateway, logger), logger),
		Report:    handlers.NewReportHandler(usecase.NewReportUseCase(client)),
	}
}

// NewRouter mounts the public and session-protected routes under /v1.
func NewRouter(h Handlers, sessions middleware.SessionLoader, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Auth)

	authed := v1.Group("")
	authed.Use(middleware.RequireSession(sessions, logger))
	addSessionAuthRoutes(authed, h.Auth)
	addConstructoraRoutes(authed, h)
	addObraRoutes(authed, h.Obra, h.Gasto)
	addResidenteRoutes(authed, h.Residente, h.Dashboard)
	addGastoRoutes(authed, h.Gasto)
	authed.GET(PathPlans, h.Payment.ListPlans)
	authed.GET(PathReports, h.Report.List)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[app][routes] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
