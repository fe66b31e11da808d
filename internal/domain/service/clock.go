package service

import "time"

// Clock supplies the current time to entitlement checks.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// NewSystemClock returns the wall clock.
func NewSystemClock() Clock {
	return SystemClock{}
}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
