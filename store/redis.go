package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"evdealer/config"

	"github.com/redis/go-redis/v9"
)

const (
	bookingPrefix = "evdealer:bookings:"
	comparePrefix = "evdealer:compare:"
	compareTTL    = 24 * time.Hour
)

// Redis 預約紀錄用 list（RPUSH/LRANGE），比較清單用 JSON 字串加 TTL
type Redis struct {
	client redis.UniversalClient
}

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// NewRedisClient 依設定建立連線並 PING 確認
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func (r *Redis) Append(ctx context.Context, key string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record for %s: %w", key, err)
	}
	if err := r.client.RPush(ctx, bookingPrefix+key, data).Err(); err != nil {
		return fmt.Errorf("failed to append to %s: %w", key, err)
	}
	return nil
}

func (r *Redis) List(ctx context.Context, key string) ([]json.RawMessage, error) {
	items, err := r.client.LRange(ctx, bookingPrefix+key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", key, err)
	}
	out := make([]json.RawMessage, len(items))
	for i, item := range items {
		out[i] = json.RawMessage(item)
	}
	return out, nil
}

func (r *Redis) Load(ctx context.Context, sessionID string) ([]string, error) {
	raw, err := r.client.Get(ctx, comparePrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load compare session %s: %w", sessionID, err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("corrupt compare session %s: %w", sessionID, err)
	}
	return ids, nil
}

func (r *Redis) Save(ctx context.Context, sessionID string, vehicleIDs []string) error {
	data, err := json.Marshal(vehicleIDs)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, comparePrefix+sessionID, data, compareTTL).Err(); err != nil {
		return fmt.Errorf("failed to save compare session %s: %w", sessionID, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, comparePrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete compare session %s: %w", sessionID, err)
	}
	return nil
}
