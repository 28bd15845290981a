package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stockscreen/internal/intent"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	intentCachePrefix = "stockscreen:intent:"
	IntentCacheTTL    = time.Hour
)

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// IntentCache keeps model-sourced Intents keyed by normalized query so a
// repeated query skips the model call. It is best effort: any Redis
// failure reads as a miss.
type IntentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIntentCache(client *redis.Client, ttl time.Duration) *IntentCache {
	return &IntentCache{client: client, ttl: ttl}
}

func (c *IntentCache) Get(query string) (*intent.Intent, bool) {
	payload, err := c.client.Get(Ctx, cacheKey(query)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("intent cache read failed", "error", err)
		}
		return nil, false
	}

	var cached intent.Intent
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		slog.Warn("intent cache entry corrupt, ignoring", "error", err)
		return nil, false
	}

	return &cached, true
}

func (c *IntentCache) Set(query string, in intent.Intent) {
	payload, err := json.Marshal(in)
	if err != nil {
		slog.Warn("intent cache encode failed", "error", err)
		return
	}

	if err := c.client.Set(Ctx, cacheKey(query), payload, c.ttl).Err(); err != nil {
		slog.Warn("intent cache write failed", "error", err)
	}
}

func cacheKey(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	sum := sha256.Sum256([]byte(normalized))
	return intentCachePrefix + hex.EncodeToString(sum[:8])
}
