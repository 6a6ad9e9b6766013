// Package stats derives aggregate numbers from the diary entries.
package stats

import (
	"sort"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/timeutil"
)

// Stats summarises the diary.
type Stats struct {
	TotalEntries int `json:"totalEntries"`
	TotalTags    int `json:"totalTags"`
	StreakDays   int `json:"streakDays"`
}

// Compute derives Stats from the full entry collection as seen at now.
func Compute(entries []*entry.Entry, now time.Time) Stats {
	tags := make(map[string]struct{})
	times := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		for _, t := range e.Tags {
			tags[t] = struct{}{}
		}
		times = append(times, e.CreatedAt.Time)
	}
	return Stats{
		TotalEntries: len(times),
		TotalTags:    len(tags),
		StreakDays:   Streak(times, now),
	}
}

// Streak counts consecutive calendar days ending today that have at least one
// timestamp. Days are taken in now's location. Without an entry today the
// streak is 0.
func Streak(times []time.Time, now time.Time) int {
	loc := now.Location()
	today := timeutil.StartOfDay(now)

	seen := make(map[time.Time]struct{}, len(times))
	days := make([]time.Time, 0, len(times))
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		d := timeutil.StartOfDay(t.In(loc))
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	for i, d := range days {
		if timeutil.DaysBetween(d, today) != i {
			break
		}
		streak++
	}
	return streak
}
