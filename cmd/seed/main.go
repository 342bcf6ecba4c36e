package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quotation_service/internal/adapter/persistence/repository"
	"quotation_service/internal/config"
	"quotation_service/internal/infrastructure/cache"
	"quotation_service/internal/infrastructure/database"
	"quotation_service/internal/infrastructure/logger"
	"quotation_service/internal/usecase"

	"github.com/bsm/redislock"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

const (
	seedLockKey = "quotation:seed:lock"
	seedLockTTL = 2 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").WithError(err).Fatal("[seed] invalid configuration")
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("[seed] failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	ddb, err := database.ConnectDynamoDB(ctx, database.Options{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return err
	}

	rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddress, log)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()

		lock, err := redislock.New(rdb).Obtain(ctx, seedLockKey, seedLockTTL, nil)
		if errors.Is(err, redislock.ErrNotObtained) {
			log.Info("[seed] another seeder holds the lock; skipping")
			return nil
		}
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
				log.WithError(err).Warn("[seed] release lock")
			}
		}()
	} else {
		log.Warn("[seed] running without a lock; do not start seeders concurrently")
	}

	serviceRepo := repository.NewServiceDynamoRepository(ddb, cfg.ServicesTable)
	addonRepo := repository.NewAddonDynamoRepository(ddb, cfg.AddonsTable)
	bundleRepo := repository.NewBundleDynamoRepository(ddb, cfg.BundlesTable)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.UsersTable)

	s := &seeder{
		users:   usecase.NewUserUseCase(userRepo, log),
		catalog: usecase.NewCatalogUseCase(serviceRepo, addonRepo, bundleRepo, log),
		log:     log,
	}
	return s.Seed(ctx)
}
