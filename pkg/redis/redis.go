package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cinelog/cinelog-backend/config"
	"github.com/cinelog/cinelog-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully")
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// RevokeToken marks a token as revoked until it would have expired anyway.
// Without a Redis connection revocation is a no-op; logout still succeeds
// but the token stays valid until expiry.
func RevokeToken(ctx context.Context, token string, expiry time.Duration) error {
	if client == nil {
		logger.Warn("Redis not connected, token revocation skipped")
		return nil
	}
	key := fmt.Sprintf("revoked:%s", token)
	if err := client.Set(ctx, key, "revoked", expiry).Err(); err != nil {
		logger.Error("Failed to revoke token", err)
		return err
	}
	return nil
}

// IsTokenRevoked checks whether a token has been revoked
func IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	if client == nil {
		return false, nil
	}
	key := fmt.Sprintf("revoked:%s", token)
	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to check token revocation", err)
		return false, err
	}
	return val == "revoked", nil
}
