package configs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when REDIS_ADDR is unset or the server does not
// answer; callers treat a nil client as "rate limiting disabled".
func NewRedisClient(ctx context.Context, env ENV) *redis.Client {
	if env.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("NewRedisClient: failed to connect to Redis at %s: %v. Rate limiting disabled.", env.RedisAddr, err)
		client.Close()
		return nil
	}
	log.Printf("Redis connected at %s", env.RedisAddr)
	return client
}
