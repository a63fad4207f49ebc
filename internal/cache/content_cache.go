// Package cache keeps seeded content (cards and lessons) in Redis. Learner
// state is never cached.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ai_linguo/internal/config"
	"ai_linguo/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "ai_linguo:content:"

type ContentCache interface {
	Cards(ctx context.Context, level model.Level) ([]*model.VocabCard, bool)
	SetCards(ctx context.Context, level model.Level, cards []*model.VocabCard)
	Lessons(ctx context.Context, level model.Level) ([]*model.Lesson, bool)
	SetLessons(ctx context.Context, level model.Level, lessons []*model.Lesson)
	Invalidate(ctx context.Context) error
	Close() error
}

type redisContentCache struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisContentCache connects to cfg.Addr and checks the connection.
func NewRedisContentCache(cfg config.RedisConfig, logger *slog.Logger) (ContentCache, error) {
	if cfg.Addr == "" {
		return nil, errors.New("missing redis address")
	}
	if logger == nil {
		logger = slog.Default()
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisContentCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With("component", "ContentCache"),
	}, nil
}

func cardsKey(level model.Level) string {
	if level == "" {
		return keyPrefix + "cards:all"
	}
	return keyPrefix + "cards:" + string(level)
}

func lessonsKey(level model.Level) string {
	return keyPrefix + "lessons:" + string(level)
}

func (c *redisContentCache) Cards(ctx context.Context, level model.Level) ([]*model.VocabCard, bool) {
	var cards []*model.VocabCard
	ok := c.get(ctx, cardsKey(level), &cards)
	return cards, ok
}

func (c *redisContentCache) SetCards(ctx context.Context, level model.Level, cards []*model.VocabCard) {
	c.set(ctx, cardsKey(level), cards)
}

func (c *redisContentCache) Lessons(ctx context.Context, level model.Level) ([]*model.Lesson, bool) {
	var lessons []*model.Lesson
	ok := c.get(ctx, lessonsKey(level), &lessons)
	return lessons, ok
}

func (c *redisContentCache) SetLessons(ctx context.Context, level model.Level, lessons []*model.Lesson) {
	c.set(ctx, lessonsKey(level), lessons)
}

// Invalidate drops every cached content entry. Seeding calls it after writes.
func (c *redisContentCache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan content keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *redisContentCache) Close() error {
	return c.rdb.Close()
}

// get reports a hit only when the entry exists and decodes. Redis failures
// are logged and treated as misses.
func (c *redisContentCache) get(ctx context.Context, key string, dst interface{}) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.Warn("Content cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("Content cache entry is corrupt", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (c *redisContentCache) set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Content cache encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Content cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

type noopContentCache struct{}

// NewNoopContentCache returns a cache that never hits. It is used when Redis
// is not configured.
func NewNoopContentCache() ContentCache {
	return noopContentCache{}
}

func (noopContentCache) Cards(context.Context, model.Level) ([]*model.VocabCard, bool) {
	return nil, false
}
func (noopContentCache) SetCards(context.Context, model.Level, []*model.VocabCard) {}
func (noopContentCache) Lessons(context.Context, model.Level) ([]*model.Lesson, bool) {
	return nil, false
}
func (noopContentCache) SetLessons(context.Context, model.Level, []*model.Lesson) {}
func (noopContentCache) Invalidate(context.Context) error { return nil }
func (noopContentCache) Close() error                     { return nil }
