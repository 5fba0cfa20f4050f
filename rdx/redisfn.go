package rdx

import (
	"log"
	"os"
	"time"

	"wayfarer/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// InitRedis connects using REDIS_URL. Redis only backs caches here, so a
// missing URL leaves Conn nil and every helper degrades to a miss.
func InitRedis() *redis.Client {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, response caching disabled")
		return nil
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	return Conn
}

// CacheGet returns the cached payload for key, or "" on miss or when the
// cache is disabled.
func CacheGet(key string) string {
	if Conn == nil {
		return ""
	}
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// CacheSet stores payload under key with a TTL. Errors are logged and
// swallowed; the caller already has the fresh payload in hand.
func CacheSet(key, payload string, ttl time.Duration) {
	if Conn == nil {
		return
	}
	if err := Conn.Set(globals.Ctx, key, payload, ttl).Err(); err != nil {
		log.Println("redis set error:", err)
	}
}
