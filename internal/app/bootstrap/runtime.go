package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/redis/go-redis/v9"

	appconfig "github.com/historicolocaticio/landing/internal/config"
	"github.com/historicolocaticio/landing/internal/session"
	"github.com/historicolocaticio/landing/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// SessionBackend is the page session store chosen at startup.
type SessionBackend struct {
	Store session.Store
	// Memory is set when sessions live in process and need a janitor.
	Memory *session.MemoryStore
	// Redis is set when sessions live in Redis.
	Redis *redis.Client
}

// Ping checks the backend; the in-process store is always reachable.
func (b *SessionBackend) Ping(ctx context.Context) error {
	if b == nil || b.Redis == nil {
		return nil
	}
	return b.Redis.Ping(ctx).Err()
}

// Close releases the Redis connection, if any.
func (b *SessionBackend) Close() error {
	if b == nil || b.Redis == nil {
		return nil
	}
	return b.Redis.Close()
}

// BuildSessionStore picks Redis when SESSION_STORE=redis and the server
// answers, otherwise the in-process store.
func BuildSessionStore(ctx context.Context, cfg *appconfig.Config, faqItems int, logger *logging.Logger) *SessionBackend {
	if logger == nil {
		logger = logging.Default()
	}
	ttl := session.DefaultTTL
	if cfg != nil && cfg.SessionTTL > 0 {
		ttl = cfg.SessionTTL
	}

	if cfg != nil && cfg.UseRedisSessions() {
		if client := BuildRedisClient(ctx, cfg, logger, true); client != nil {
			logger.Info("page sessions stored in redis", "addr", cfg.RedisAddr, "ttl", ttl.String())
			return &SessionBackend{Store: session.NewRedisStore(client, ttl, faqItems), Redis: client}
		}
		logger.Warn("falling back to in-memory page sessions")
	} else if cfg != nil && cfg.SessionStore == "redis" {
		logger.Warn("SESSION_STORE=redis but REDIS_ADDR is empty; using in-memory page sessions")
	}

	mem := session.NewMemoryStore(ttl, faqItems)
	logger.Info("page sessions stored in memory", "ttl", ttl.String())
	return &SessionBackend{Store: mem, Memory: mem}
}
