package cache

import (
	"strings"

	"github.com/1913176/ess-billing/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("cache",
	fx.Provide(func(cfg config.Config, log *zap.Logger) InvoiceCache {
		addr := strings.TrimSpace(cfg.RedisAddr)
		if addr == "" {
			return NewMemoryCache()
		}
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: strings.TrimSpace(cfg.RedisPassword),
			DB:       cfg.RedisDB,
		})
		return NewRedisCache(client, log)
	}),
)
