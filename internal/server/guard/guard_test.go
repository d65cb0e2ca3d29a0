package guard

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 6, 9, 3, 33, 47, 0, time.UTC)

func TestRateLimiter_TripsAfterThreshold(t *testing.T) {
	clock := timex.NewManualClock(t0)
	rl := NewRateLimiter(clock, 10, 7*24*time.Hour)
	var s models.RateLimit

	for i := 1; i <= 10; i++ {
		clock.Advance(time.Minute)
		require.Nil(t, rl.OnFailure(&s), "attempt %d", i)
		require.Equal(t, i, s.InvalidCount)
	}

	until := rl.OnFailure(&s)
	require.NotNil(t, until)
	assert.Equal(t, t0.Add(time.Minute).Add(7*24*time.Hour), *until)
	assert.Equal(t, 11, s.InvalidCount)

	// still limited, counter keeps growing
	clock.Advance(24 * time.Hour)
	require.NotNil(t, rl.OnFailure(&s))
	assert.Equal(t, 12, s.InvalidCount)
}

func TestRateLimiter_ResetsAfterWindow(t *testing.T) {
	clock := timex.NewManualClock(t0)
	rl := NewRateLimiter(clock, 10, 7*24*time.Hour)
	var s models.RateLimit

	for i := 0; i < 11; i++ {
		rl.OnFailure(&s)
	}
	require.Equal(t, 11, s.InvalidCount)

	clock.Advance(7 * 24 * time.Hour)
	assert.Nil(t, rl.OnFailure(&s))
	assert.Nil(t, s.FirstInvalidAt)
	assert.Equal(t, 0, s.InvalidCount)
}

func TestRateLimiter_BelowThresholdNeverResetsByTime(t *testing.T) {
	clock := timex.NewManualClock(t0)
	rl := NewRateLimiter(clock, 10, time.Hour)
	var s models.RateLimit

	rl.OnFailure(&s)
	clock.Advance(48 * time.Hour)
	assert.Nil(t, rl.OnFailure(&s))
	assert.Equal(t, 2, s.InvalidCount)
	assert.Equal(t, t0, *s.FirstInvalidAt)
}

func TestRateLimiter_OnSuccessIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(timex.NewManualClock(t0), 0, 0)
	first := t0

	states := []models.RateLimit{
		{},
		{FirstInvalidAt: &first, InvalidCount: 3},
		{FirstInvalidAt: &first, InvalidCount: 100},
	}
	for _, s := range states {
		rl.OnSuccess(&s)
		rl.OnSuccess(&s)
		assert.Equal(t, models.RateLimit{}, s)
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(nil, 0, 0)
	assert.Equal(t, DefaultThreshold, rl.threshold)
	assert.Equal(t, DefaultWindow, rl.window)
	assert.NotNil(t, rl.clock)
}

func TestTimeLock_Lifecycle(t *testing.T) {
	clock := timex.NewManualClock(t0)
	tl := NewTimeLock(clock, 30*24*time.Hour)
	var s models.TimeLock

	first := tl.Check(&s)
	require.NotNil(t, first)
	assert.Equal(t, t0.Add(30*24*time.Hour), *first)

	clock.Advance(10 * 24 * time.Hour)
	second := tl.Check(&s)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)

	clock.Set(*first)
	assert.Nil(t, tl.Check(&s))
	assert.Nil(t, s.LockedUntil)

	// a new attempt starts a new lock
	again := tl.Check(&s)
	require.NotNil(t, again)
	assert.Equal(t, first.Add(30*24*time.Hour), *again)
}

func TestTimeLock_Defaults(t *testing.T) {
	tl := NewTimeLock(nil, 0)
	assert.Equal(t, DefaultLockFor, tl.lockFor)
}
