package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	_ "quotation_service/docs"
	"quotation_service/internal/adapter/export"
	"quotation_service/internal/adapter/http/dto/request"
	"quotation_service/internal/adapter/http/handlers"
	"quotation_service/internal/adapter/http/middleware"
	"quotation_service/internal/adapter/persistence/repository"
	"quotation_service/internal/config"
	"quotation_service/internal/infrastructure/auth"
	"quotation_service/internal/infrastructure/cache"
	"quotation_service/internal/infrastructure/database"
	"quotation_service/internal/infrastructure/metrics"
	"quotation_service/internal/usecase"
	"quotation_service/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Catalog   *handlers.CatalogHandler
	Quotation *handlers.QuotationHandler
	Analytics *handlers.AnalyticsHandler
}

// NewRouter builds the gin engine with middlewares and every route under /api.
func NewRouter(cfg *config.Config, log logrus.FieldLogger, authUC usecase.IAuthUseCase, h Handlers, m *metrics.Metrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	setMiddlewares(router, cfg, log, m)

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	requireAuth := middleware.Authenticate(authUC)

	addAuthRoutes(api, requireAuth, h.Auth)
	addCatalogRoutes(api, requireAuth, h.Catalog)
	addQuotationRoutes(api, requireAuth, h.Quotation)
	addAdminRoutes(api, requireAuth, h.Analytics, h.User)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log logrus.FieldLogger, m *metrics.Metrics) {
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("[http] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	router.Use(m.Middleware())
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// Run wires the stores, use cases and handlers, then serves until ctx is
// cancelled.
func Run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	if err := request.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx, database.Options{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddress, log)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	serviceRepo := repository.NewServiceDynamoRepository(ddb, cfg.ServicesTable)
	addonRepo := repository.NewAddonDynamoRepository(ddb, cfg.AddonsTable)
	bundleRepo := repository.NewBundleDynamoRepository(ddb, cfg.BundlesTable)
	quotationRepo := repository.NewQuotationDynamoRepository(ddb, cfg.QuotationsTable, cfg.QuotationNumbersTable)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.UsersTable)

	var sequence interfaces.IQuotationSequence
	if rdb != nil {
		sequence = repository.NewQuotationSequenceRedis(rdb, cfg.QuotationSequenceKey)
	}

	pricing := usecase.NewPricingEngine(serviceRepo, addonRepo, bundleRepo, log)
	numbers := usecase.NewQuotationNumberGenerator(sequence, cfg.QuotationNumberPrefix, log)
	quotationUC := usecase.NewQuotationUseCase(quotationRepo, pricing, numbers, serviceRepo, addonRepo, bundleRepo, userRepo, log)
	catalogUC := usecase.NewCatalogUseCase(serviceRepo, addonRepo, bundleRepo, log)
	analyticsUC := usecase.NewAnalyticsUseCase(quotationRepo, serviceRepo, userRepo, log)
	authUC := usecase.NewAuthUseCase(userRepo, auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL), log)
	userUC := usecase.NewUserUseCase(userRepo, log)

	exporter := export.NewDocumentExporter()
	m := metrics.New()

	router := NewRouter(cfg, log, authUC, Handlers{
		Auth:      handlers.NewAuthHandler(authUC),
		User:      handlers.NewUserHandler(userUC),
		Catalog:   handlers.NewCatalogHandler(catalogUC),
		Quotation: handlers.NewQuotationHandler(quotationUC, exporter, m),
		Analytics: handlers.NewAnalyticsHandler(analyticsUC, exporter),
	}, m)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("[http] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
