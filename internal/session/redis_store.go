package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const maxUpdateAttempts = 5

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore keeps sessions in Redis so several page servers can share them.
type RedisStore struct {
	redis    *redis.Client
	ttl      time.Duration
	faqItems int
	tracer   trace.Tracer
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client, ttl time.Duration, faqItems int) *RedisStore {
	if client == nil {
		panic("session: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		redis:    client,
		ttl:      ttl,
		faqItems: faqItems,
		tracer:   otel.Tracer("landing.internal.session.redis"),
	}
}

// Load returns the stored page or a fresh one.
func (s *RedisStore) Load(ctx context.Context, id string) (*Page, error) {
	ctx, span := s.tracer.Start(ctx, "session.load")
	defer span.End()

	page, err := s.read(ctx, s.redis, sessionKey(id))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return page, nil
}

// Update runs fn inside an optimistic WATCH/MULTI transaction, retrying when
// another request changed the session first.
func (s *RedisStore) Update(ctx context.Context, id string, fn func(*Page) error) (*Page, error) {
	ctx, span := s.tracer.Start(ctx, "session.update")
	defer span.End()

	key := sessionKey(id)
	var result *Page
	txf := func(tx *redis.Tx) error {
		page, err := s.read(ctx, tx, key)
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
		data, err := json.Marshal(page)
		if err != nil {
			return fmt.Errorf("session: failed to encode page: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result = page
		return nil
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.redis.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		span.RecordError(err)
		return nil, err
	}
	span.RecordError(ErrConflict)
	return nil, ErrConflict
}

func (s *RedisStore) read(ctx context.Context, c getter, key string) (*Page, error) {
	data, err := c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return NewPage(s.faqItems), nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: failed to load page: %w", err)
	}
	page, err := decodePage(data, s.faqItems)
	if err != nil {
		return nil, fmt.Errorf("session: failed to decode page: %w", err)
	}
	return page, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("landing:session:%s", id)
}
