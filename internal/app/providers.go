package app

import (
	"context"
	"fmt"

	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	// Domains
	"github.com/darkroom/server/internal/domain/notify"
	"github.com/darkroom/server/internal/domain/photo"

	// Inbound adapters
	ginadapter "github.com/darkroom/server/internal/adapter/inbound/gin"

	// Ports
	"github.com/darkroom/server/internal/port/inbound"
	"github.com/darkroom/server/internal/port/outbound"

	// Outbound adapters
	dynamoadapter "github.com/darkroom/server/internal/adapter/outbound/dynamodb"
	"github.com/darkroom/server/internal/adapter/outbound/memory"
	"github.com/darkroom/server/internal/adapter/outbound/postgres"
	redisadapter "github.com/darkroom/server/internal/adapter/outbound/redis"
	s3adapter "github.com/darkroom/server/internal/adapter/outbound/s3"

	// Infrastructure
	"github.com/darkroom/server/internal/shared/cache"
	"github.com/darkroom/server/internal/shared/cloud"
	"github.com/darkroom/server/internal/shared/config"
	"github.com/darkroom/server/internal/shared/database"
	"github.com/darkroom/server/internal/shared/logger"

	// Utils
	"github.com/darkroom/server/internal/utils/metrics"
)

// ===== Infrastructure Providers =====

// InfraSet provides infrastructure dependencies.
var InfraSet = wire.NewSet(
	ProvideLogger,
	ProvideZapLogger,
	ProvideMetrics,
	ProvideDatabase,
	ProvideRedisClient,
	ProvideRateLimiter,
)

// ProvideLogger creates the HTTP logger.
func ProvideLogger(cfg *config.Config) *logger.Logger {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// ProvideZapLogger creates the domain logger.
func ProvideZapLogger(cfg *config.Config) (*zap.Logger, func()) {
	l := logger.NewZapLogger(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	return l, func() { _ = l.Sync() }
}

// ProvideMetrics creates a metrics instance, or nil when metrics are disabled.
func ProvideMetrics(cfg *config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New(cfg.Metrics.Namespace)
}

// ProvideDatabase opens Postgres when it backs the phone record store.
func ProvideDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, func(), error) {
	if cfg.Notify.Backend != config.NotifyBackendPostgres {
		return nil, func() {}, nil
	}
	db, err := database.New(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = database.Close(db) }, nil
}

// ProvideRedisClient connects to Redis when it backs rate limiting. A failed
// connection degrades to the in-process limiter.
func ProvideRedisClient(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (goredis.UniversalClient, func()) {
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Backend != "redis" || cfg.Redis.Address == "" {
		return nil, func() {}
	}
	client, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		zapLog.Warn("Redis connection failed, falling back to in-process rate limiting", zap.Error(err))
		return nil, func() {}
	}
	return client, func() { _ = cache.Close(client) }
}

// ProvideRateLimiter creates the rate limiter, or nil when rate limiting is disabled.
func ProvideRateLimiter(cfg *config.Config, redis goredis.UniversalClient) outbound.RateLimiterPort {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	if redis != nil {
		return redisadapter.NewRateLimiter(redis)
	}
	return memory.NewRateLimiter(10 * cfg.RateLimit.Window)
}

// ===== Photo Domain Providers =====

// PhotoSet provides photo domain dependencies.
var PhotoSet = wire.NewSet(
	ProvideUploadSigner,
	ProvidePhotoDomain,
	ginadapter.NewPhotoHandler,
)

// ProvideUploadSigner creates the S3 presigner.
func ProvideUploadSigner(ctx context.Context, cfg *config.Config) (outbound.UploadGrantIssuerPort, error) {
	client, err := s3adapter.NewClient(ctx, &s3adapter.Config{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Bucket:          cfg.Storage.Bucket,
		UsePathStyle:    cfg.Storage.UsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	return s3adapter.NewUploadSigner(client, cfg.Storage.Bucket), nil
}

// ProvidePhotoDomain creates the photo domain.
func ProvidePhotoDomain(issuer outbound.UploadGrantIssuerPort, cfg *config.Config, zapLog *zap.Logger) inbound.PhotoDomain {
	return photo.NewDomain(issuer, &photo.Config{
		KeyPrefix:     cfg.Storage.UploadPrefix,
		URLExpiry:     cfg.Storage.UploadURLExpiry,
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	}, zapLog.Named("photo"))
}

// ===== Notify Domain Providers =====

// NotifySet provides notify domain dependencies.
var NotifySet = wire.NewSet(
	ProvidePhoneRecordStore,
	ProvideNotifyDomain,
	ginadapter.NewNotifyHandler,
)

// ProvidePhoneRecordStore selects the phone record backend.
func ProvidePhoneRecordStore(ctx context.Context, cfg *config.Config, db *gorm.DB) (outbound.PhoneRecordStorePort, error) {
	switch cfg.Notify.Backend {
	case config.NotifyBackendDynamoDB:
		client, err := dynamoadapter.NewClient(ctx, cloud.AWSConfig{
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
		}, cfg.Notify.DynamoDBEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init dynamodb: %w", err)
		}
		return dynamoadapter.NewPhoneRecordAdapter(client, cfg.Notify.Table), nil
	default:
		return postgres.NewPhoneRecordAdapter(db), nil
	}
}

// ProvideNotifyDomain creates the notify domain.
func ProvideNotifyDomain(store outbound.PhoneRecordStorePort, cfg *config.Config, zapLog *zap.Logger) inbound.NotifyDomain {
	return notify.NewDomain(store, &notify.Config{
		BreakerFailures: cfg.Notify.BreakerFailures,
		BreakerTimeout:  cfg.Notify.BreakerTimeout,
		BreakerInterval: cfg.Notify.BreakerInterval,
	}, zapLog.Named("notify"))
}

// AppSet is the complete provider set.
var AppSet = wire.NewSet(
	InfraSet,
	PhotoSet,
	NotifySet,
)
