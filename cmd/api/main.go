package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "quotation_service/docs"
	"quotation_service/internal/adapter/http/routes"
	"quotation_service/internal/config"
	"quotation_service/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quotation Service API
// @version         1.0
// @description     NexLead quotation management: catalog, pricing, quotations, PDF and analytics exports.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").WithError(err).Fatal("[api] invalid configuration")
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("[api] failed to startup the application")
	}
}
