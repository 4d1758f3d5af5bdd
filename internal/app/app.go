package app

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/config"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp opens the infrastructure, applies migrations and registers every
// module on router. Connections live for the lifetime of the process.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app")

	gormDB, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	log.Info("database connection established")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := RunMigrations(ctx, sqlDB, logger); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	log.Info("redis connection established")

	store, err := newObjectStore(cfg, logger)
	if err != nil {
		return err
	}

	return registerModules(router, cfg, sqlDB, gormDB, redisClient, store, logger)
}

func openDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		cfg.DB.MaxRetries,
	)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// newObjectStore falls back to process memory when no endpoint is configured.
func newObjectStore(cfg *config.Config, logger *zap.Logger) (storage.ObjectStore, error) {
	if cfg.Storage.Endpoint == "" {
		logger.Warn("HRMS_STORAGE_ENDPOINT is empty, files are kept in memory")
		return storage.NewMemoryStore(cfg.Storage.PublicBaseURL), nil
	}

	client, err := connection.ConnectMinio(connection.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return storage.NewMinioStore(client, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL, logger), nil
}
