package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"distrital4/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateStore counts hits per key inside fixed windows.
type RateStore interface {
	// Hit records one request for key and returns the count in the current
	// window together with the moment the window closes.
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// RateLimit rejects a client IP once it exceeds limit requests per window.
// Store failures let the request through; the limiter must not take the API down.
func RateLimit(store RateStore, scope string, limit int, window time.Duration, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		count, windowEnd, err := store.Hit(c.Request.Context(), key, window)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limiter store unavailable")
			c.Next()
			return
		}
		if count > int64(limit) {
			retry := int(time.Until(windowEnd).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// ── In-memory store ──────────────────────────────────────────────────────────

type rateEntry struct {
	count     int64
	windowEnd time.Time
}

// MemoryStore keeps counters in process memory. Expired entries are purged
// periodically until the context passed to NewMemoryStore is cancelled.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
	now     func() time.Time
}

const purgeInterval = 5 * time.Minute

func NewMemoryStore(ctx context.Context) *MemoryStore {
	s := &MemoryStore{entries: make(map[string]*rateEntry), now: time.Now}
	go s.purgeLoop(ctx)
	return s
}

func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || now.After(e.windowEnd) {
		e = &rateEntry{windowEnd: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, e.windowEnd, nil
}

func (s *MemoryStore) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.purge(); n > 0 {
				log.Debug().Int("entries_purged", n).Msg("rate limiter entries purged")
			}
		}
	}
}

func (s *MemoryStore) purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	purged := 0
	for k, e := range s.entries {
		if now.After(e.windowEnd) {
			delete(s.entries, k)
			purged++
		}
	}
	return purged
}

// ── Redis store ──────────────────────────────────────────────────────────────

// RedisStore shares counters between replicas. The expiry is only set by the
// first hit of a window (EXPIRE NX, Redis 7+), so windows stay fixed.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	k := s.prefix + key
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, window)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit: %w", err)
	}
	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
	}
	return incr.Val(), time.Now().Add(remaining), nil
}
