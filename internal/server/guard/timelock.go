package guard

import (
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
)

// TimeLock is a one-shot delay: the first attempt starts the lock, every
// attempt before the deadline is rejected, and only the passing of the
// deadline (never a correct credential) lets the operation through.
type TimeLock struct {
	clock   timex.Clock
	lockFor time.Duration
}

func NewTimeLock(clock timex.Clock, lockFor time.Duration) *TimeLock {
	if clock == nil {
		clock = timex.SystemClock
	}
	if lockFor <= 0 {
		lockFor = DefaultLockFor
	}
	return &TimeLock{clock: clock, lockFor: lockFor}
}

// Check returns the lock deadline while the operation must be refused, or
// nil once it may proceed, in which case the lock is cleared.
func (l *TimeLock) Check(s *models.TimeLock) *time.Time {
	now := l.clock.Now()
	if s.LockedUntil == nil {
		until := now.Add(l.lockFor)
		s.LockedUntil = &until
		return &until
	}

	if now.Before(*s.LockedUntil) {
		until := *s.LockedUntil
		return &until
	}

	s.LockedUntil = nil
	return nil
}
