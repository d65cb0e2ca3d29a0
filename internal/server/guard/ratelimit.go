// Package guard implements the brute-force rate limiter and the time lock.
// Both keep their state inside the record being guarded; the caller
// persists the record after every check.
package guard

import (
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
)

const (
	DefaultThreshold = 10
	DefaultWindow    = 7 * 24 * time.Hour
	DefaultLockFor   = 30 * 24 * time.Hour
)

// RateLimiter counts consecutive failed attempts and imposes a cooldown once
// more than Threshold attempts were made within Window of the first one.
type RateLimiter struct {
	clock     timex.Clock
	threshold int
	window    time.Duration
}

func NewRateLimiter(clock timex.Clock, threshold int, window time.Duration) *RateLimiter {
	if clock == nil {
		clock = timex.SystemClock
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RateLimiter{clock: clock, threshold: threshold, window: window}
}

// OnFailure must be called before every credential comparison. It records
// the attempt and returns the cooldown deadline if the request has to be
// rejected, or nil if the comparison may proceed. A successful comparison
// is then followed by OnSuccess.
func (r *RateLimiter) OnFailure(s *models.RateLimit) *time.Time {
	now := r.clock.Now()
	if s.FirstInvalidAt == nil {
		first := now
		s.FirstInvalidAt = &first
	}
	s.InvalidCount++

	if s.InvalidCount <= r.threshold {
		return nil
	}

	until := s.FirstInvalidAt.Add(r.window)
	if now.Before(until) {
		return &until
	}

	// window elapsed: start over and give this request its comparison
	r.OnSuccess(s)
	return nil
}

// OnSuccess resets the counters.
func (r *RateLimiter) OnSuccess(s *models.RateLimit) {
	s.FirstInvalidAt = nil
	s.InvalidCount = 0
}
