// Package dates works with calendar dates.
//
// A calendar date is represented as a time.Time at midnight UTC. Keeping every
// stored date in that form lets both sqlite and postgres compare them with
// plain range predicates.
package dates

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format of a calendar date.
	DateLayout = "2006-01-02"
	// MonthLayout is the wire format of a calendar month.
	MonthLayout = "2006-01"
)

// Clock yields the current calendar date in a fixed location.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// NewClock returns a Clock reading now and interpreting it in loc.
// A nil now uses time.Now; a nil loc uses UTC.
func NewClock(now func() time.Time, loc *time.Location) Clock {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return Clock{now: now, loc: loc}
}

// Today returns the current calendar date.
func (c Clock) Today() time.Time {
	return Of(c.now().In(c.loc))
}

// CurrentMonth returns the half-open range covering the current calendar month.
func (c Clock) CurrentMonth() Range {
	return MonthOf(c.Today())
}

// Of returns the calendar date of t as seen in t's own location.
func Of(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse parses a YYYY-MM-DD calendar date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside r.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// MonthOf returns the range of the calendar month containing d.
func MonthOf(d time.Time) Range {
	y, m, _ := d.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: start.AddDate(0, 1, 0)}
}

// ParseMonth parses a YYYY-MM month into its date range.
func ParseMonth(s string) (Range, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Range{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return MonthOf(t), nil
}
