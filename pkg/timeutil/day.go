// Package timeutil holds the calendar helpers shared by statistics and the
// timeline. All bucketing happens in the location of the supplied time so a
// viewer's local calendar day is used consistently.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// LayoutDay is the ISO calendar-date layout.
	LayoutDay = "2006-01-02"
	// LayoutMonth is the sortable key layout for month groups.
	LayoutMonth = "2006-01"
)

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from a to b (positive when b is later).
// Both values are reduced to their calendar date in their own location, so
// DST shifts never produce a 23 or 25 hour "day".
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}

// MonthKey is the sortable year-month key for t.
func MonthKey(t time.Time) string {
	return t.Format(LayoutMonth)
}

// MonthLabel renders the human readable group heading, e.g. 2026年10月.
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
}

// FromMillis converts a unix millisecond timestamp into local time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).Local()
}

// Millis converts t into a unix millisecond timestamp.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
