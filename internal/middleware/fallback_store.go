package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type breakerState int

const (
	breakerClosed   breakerState = iota // primary in use
	breakerOpen                         // primary skipped until cooldown elapses
	breakerHalfOpen                     // one probe hit in flight
)

func (s breakerState) String() string {
	switch s {
	case breakerClosed:
		return "closed"
	case breakerOpen:
		return "open"
	case breakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// FallbackStore counts hits in primary (Redis) while it answers and switches
// to secondary (process memory) after threshold consecutive failures. Once
// cooldown has passed a single hit probes primary again.
type FallbackStore struct {
	primary   RateStore
	secondary RateStore
	threshold int
	cooldown  time.Duration
	now       func() time.Time

	mu       sync.Mutex
	state    breakerState
	failures int
	openedAt time.Time
}

func NewFallbackStore(primary, secondary RateStore, threshold int, cooldown time.Duration) *FallbackStore {
	if threshold <= 0 {
		threshold = 5
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &FallbackStore{
		primary:   primary,
		secondary: secondary,
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
	}
}

func (s *FallbackStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if !s.usePrimary() {
		return s.secondary.Hit(ctx, key, window)
	}
	n, end, err := s.primary.Hit(ctx, key, window)
	s.record(err)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("rate limiter: primary store failed, using memory")
		return s.secondary.Hit(ctx, key, window)
	}
	return n, end, nil
}

func (s *FallbackStore) usePrimary() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case breakerOpen:
		if s.now().Sub(s.openedAt) < s.cooldown {
			return false
		}
		s.state = breakerHalfOpen
		return true
	case breakerHalfOpen:
		return false
	default:
		return true
	}
}

func (s *FallbackStore) record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		if s.state != breakerClosed {
			log.Info().Msg("rate limiter: primary store recovered")
		}
		s.state = breakerClosed
		s.failures = 0
		return
	}
	s.failures++
	if s.state == breakerHalfOpen || s.failures >= s.threshold {
		if s.state == breakerClosed {
			log.Error().Int("failures", s.failures).Msg("rate limiter: primary store disabled")
		}
		s.state = breakerOpen
		s.openedAt = s.now()
		s.failures = 0
	}
}

// State reports the breaker position for health output and tests.
func (s *FallbackStore) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.String()
}
