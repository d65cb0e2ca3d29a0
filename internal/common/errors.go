// Package common defines sentinel errors shared by the escrow components.
// Callers should use errors.Is / errors.As to match these values.
package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Validation errors. Returned before any storage access.
	ErrorInvalidArgument = errors.New("invalid argument")

	// Repository / lookup errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")

	// A PIN or one-time code did not match. Counted by the rate limiter.
	ErrorInvalidCredential = errors.New("invalid credential")

	// Storage, crypto or dispatch failures.
	ErrorInternal = errors.New("internal error")

	ErrRateLimited = errors.New("rate limited")
	ErrTimeLocked  = errors.New("time locked")
)

// RateLimitedError is returned when the brute-force guard tripped. Until is
// the earliest moment the caller may retry.
type RateLimitedError struct {
	Until time.Time
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited until %s", e.Until.UTC().Format(time.RFC3339))
}

func (e *RateLimitedError) Is(target error) bool { return target == ErrRateLimited }

// TimeLockedError is returned while a time lock is pending.
type TimeLockedError struct {
	Until time.Time
}

func (e *TimeLockedError) Error() string {
	return fmt.Sprintf("time locked until %s", e.Until.UTC().Format(time.RFC3339))
}

func (e *TimeLockedError) Is(target error) bool { return target == ErrTimeLocked }

// Deadline extracts the retry deadline from a rate-limit or time-lock error.
func Deadline(err error) (time.Time, bool) {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl.Until, true
	}
	var tl *TimeLockedError
	if errors.As(err, &tl) {
		return tl.Until, true
	}
	return time.Time{}, false
}
