// Package analytics derives the dashboard KPIs and chart series of a sales
// pipeline from snapshots of its deals, stages, accounts, users and goals.
//
// Every function in this package is a deterministic fold over its inputs.
// Nothing here performs I/O or keeps state. Functions that depend on the
// current date take it as an explicit now argument; services obtain it from
// a Clock so tests can freeze time.
package analytics

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in the clock's location (local time when unset)
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}
