package adapter

import "time"

// Clock is the bot's source of time. Now is in UTC because release dates,
// birthday hours and ledger years are all compared in UTC.
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	After(d time.Duration) <-chan time.Time
}

type utcClock struct{}

// NewClock returns the wall clock in UTC
func NewClock() Clock {
	return utcClock{}
}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}

func (utcClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (utcClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
