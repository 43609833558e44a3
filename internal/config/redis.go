package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the analytics cache and location pub/sub
// server and pings it once.
func NewRedisClient(cfg *Config) (*redis.Client, error) {
	opt, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if cfg.RedisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RedisTimeout)
		defer cancel()
	}
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

func redisOptions(cfg *Config) (*redis.Options, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	if cfg.RedisPoolSize > 0 {
		opt.PoolSize = cfg.RedisPoolSize
	}
	if cfg.RedisTimeout > 0 {
		opt.DialTimeout = cfg.RedisTimeout
		opt.ReadTimeout = cfg.RedisTimeout
		opt.WriteTimeout = cfg.RedisTimeout
	}
	return opt, nil
}
