package solartime

import "time"

// Span is the interval between two instants.
type Span struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies strictly between Start and End.
func (s Span) Contains(t time.Time) bool {
	return t.After(s.Start) && t.Before(s.End)
}

// Duration returns End - Start.
func (s Span) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Midpoint returns the instant halfway between Start and End, truncated to
// the millisecond, in Start's location.
func (s Span) Midpoint() time.Time {
	ms := (s.Start.UnixMilli() + s.End.UnixMilli()) / 2
	return time.UnixMilli(ms).In(s.Start.Location())
}
