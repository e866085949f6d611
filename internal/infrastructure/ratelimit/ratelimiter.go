// Package ratelimit throttles login attempts against the shared portal
// secrets. Backed by redis when configured, otherwise a no-op.
package ratelimit

import "time"

type Config struct {
	AttemptsPerMinute int
	AttemptsPerHour   int
}

type RateLimiter interface {
	Allow(key string, config Config) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

// NoopRateLimiter allows everything. Used when no redis host is configured;
// single-instance deployments behind an intranet usually run this way.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (l *NoopRateLimiter) Allow(key string, config Config) (bool, error) {
	return true, nil
}

func (l *NoopRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (l *NoopRateLimiter) Reset(key string) error {
	return nil
}
