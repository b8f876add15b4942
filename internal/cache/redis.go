package cache

import (
	"context"
	"encoding/json"
	"strconv"

	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const invoicesKey = "invoices:recent"

type redisCache struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisCache stores the recent-invoices list in a redis hash keyed by
// invoice id.
func NewRedisCache(client *redis.Client, log *zap.Logger) InvoiceCache {
	return &redisCache{
		client: client,
		log:    log.Named("cache.redis"),
	}
}

func (c *redisCache) List(ctx context.Context) ([]*invoicedomain.WireInvoice, error) {
	fields, err := c.client.HGetAll(ctx, invoicesKey).Result()
	if err != nil {
		return nil, err
	}
	invoices := make([]*invoicedomain.WireInvoice, 0, len(fields))
	for _, raw := range fields {
		var inv invoicedomain.WireInvoice
		if err := json.Unmarshal([]byte(raw), &inv); err != nil {
			c.log.Warn("dropping unreadable cache entry", zap.Error(err))
			continue
		}
		invoices = append(invoices, &inv)
	}
	return invoices, nil
}

func (c *redisCache) Set(ctx context.Context, inv *invoicedomain.WireInvoice) error {
	raw, err := json.Marshal(inv)
	if err != nil {
		return err
	}
	return c.client.HSet(ctx, invoicesKey, field(inv.ID), raw).Err()
}

func (c *redisCache) Remove(ctx context.Context, id snowflake.ID) error {
	return c.client.HDel(ctx, invoicesKey, field(id)).Err()
}

func (c *redisCache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, invoicesKey).Err()
}

func field(id snowflake.ID) string {
	return strconv.FormatInt(int64(id), 10)
}
