package kv

import (
	"context"
	"fmt"
	"net"

	"github.com/2beens/mapty/internal/config"
	"github.com/2beens/mapty/internal/db"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type NewParams struct {
	Config            *config.Config
	RedisPassword     string
	PostgresPassword  string
	MetricsRegisterer prometheus.Registerer
}

// New opens the store selected by the storage_backend config value.
// The returned close func releases connections held by the store.
func New(ctx context.Context, params NewParams) (Store, func() error, error) {
	cfg := params.Config
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case config.StorageMemory:
		log.Warnln("using in-memory storage, workouts will not survive a restart")
		return NewMemoryStore(cfg.MemoryCacheSize), noop, nil

	case config.StorageFile:
		store, err := NewFileStore(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		log.Infof("using file storage at [%s]", cfg.StoragePath)
		return store, noop, nil

	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if cfg.TracingEnabled {
			rdb.AddHook(redisotel.NewTracingHook())
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Infof("using redis storage at [%s:%s]", cfg.RedisHost, cfg.RedisPort)
		return NewRedisStore(rdb, cfg.RedisKeyPrefix), rdb.Close, nil

	case config.StoragePostgres:
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:            cfg.PostgresHost,
			DBPort:            cfg.PostgresPort,
			DBName:            cfg.PostgresDBName,
			DBPassword:        params.PostgresPassword,
			TracingEnabled:    cfg.TracingEnabled,
			MetricsRegisterer: params.MetricsRegisterer,
		})
		if err != nil {
			return nil, nil, err
		}
		store := NewPostgresStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Infof("using postgres storage at [%s:%s/%s]", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName)
		return store, func() error {
			pool.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
