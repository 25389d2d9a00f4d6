// Package clock abstracts the source of current time so that date-based
// lending arithmetic can be tested deterministically.
package clock

import "time"

var _ Clocker = (*Clock)(nil) // ensure Clock implements Clocker.

// Clocker is an interface for getting current real time.
type Clocker interface {
	Now() time.Time
}

// Clock implements the Clocker interface using UTC wall-clock time.
type Clock struct{}

// New returns a ready to use Clock.
func New() *Clock {
	return &Clock{}
}

// Now provides current clock time in UTC.
func (c *Clock) Now() time.Time {
	return time.Now().UTC()
}
