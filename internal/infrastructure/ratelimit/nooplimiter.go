package ratelimit

import "time"

// NoopRateLimiter allows every request. Used when redis is not configured
// so the middleware chain stays identical across environments.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (l *NoopRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	return true, nil
}

func (l *NoopRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (l *NoopRateLimiter) Reset(key string) error {
	return nil
}
