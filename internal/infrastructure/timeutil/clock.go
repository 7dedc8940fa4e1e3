// Package timeutil abstracts the wall clock so expiry logic can be tested
// without sleeping.
package timeutil

import "time"

// Clock is the time source used by anything that tracks expiry.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock returns the production clock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually driven clock for tests. It only moves when the
// test advances it.
type MockClock struct {
	current time.Time
}

// NewMockClock returns a mock clock frozen at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockFromString returns a mock clock frozen at the given RFC3339
// instant. Panics on a malformed string; test setup only.
func NewMockClockFromString(s string) *MockClock {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("timeutil: bad RFC3339 instant: " + err.Error())
	}
	return &MockClock{current: t}
}

func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// AdvanceMinutes moves the clock forward by whole minutes.
func (m *MockClock) AdvanceMinutes(n int) {
	m.Advance(time.Duration(n) * time.Minute)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
