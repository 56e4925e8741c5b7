package jobber

import "time"

// Context carries the notional "now" through the engine. Every function that
// needs the current time takes one explicitly; nothing in this package
// consults a global clock, so tests can pin time.Time values instead of
// racing the wall clock.
type Context struct {
	now time.Time
}

// NewContext returns a Context pinned to the current UTC instant.
func NewContext() Context {
	return Context{now: time.Now().UTC()}
}

// NewContextAt returns a Context pinned to an explicit instant, for tests and
// for --now-style overrides.
func NewContextAt(now time.Time) Context {
	return Context{now: now.UTC()}
}

// Now returns the pinned instant, in UTC.
func (c Context) Now() time.Time {
	return c.now
}
