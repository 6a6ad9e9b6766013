package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/diary/pkg/entry"
)

var now = time.Date(2026, 10, 18, 15, 0, 0, 0, time.Local)

func daysAgo(n int, hour int) time.Time {
	d := now.AddDate(0, 0, -n)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.Local)
}

func TestStreak(t *testing.T) {
	tests := map[string]struct {
		times []time.Time
		want  int
	}{
		"no entries": {
			want: 0,
		},
		"today yesterday and the day before": {
			times: []time.Time{daysAgo(0, 8), daysAgo(1, 22), daysAgo(2, 7)},
			want:  3,
		},
		"nothing today": {
			times: []time.Time{daysAgo(1, 8), daysAgo(2, 8)},
			want:  0,
		},
		"gap after today": {
			times: []time.Time{daysAgo(0, 8), daysAgo(3, 8)},
			want:  1,
		},
		"several entries per day count once": {
			times: []time.Time{daysAgo(0, 1), daysAgo(0, 23), daysAgo(1, 12), daysAgo(1, 13)},
			want:  2,
		},
		"unsorted input": {
			times: []time.Time{daysAgo(2, 8), daysAgo(0, 8), daysAgo(1, 8), daysAgo(5, 8)},
			want:  3,
		},
		"just after midnight": {
			times: []time.Time{daysAgo(0, 0), daysAgo(1, 23)},
			want:  2,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Streak(tc.times, now))
		})
	}
}

func TestStreakUsesViewerCalendar(t *testing.T) {
	viewer := time.FixedZone("UTC+8", 8*3600)
	at := time.Date(2026, 10, 18, 9, 0, 0, 0, viewer)
	// 23:30 UTC on the 17th is already the 18th for the viewer.
	late := time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 1, Streak([]time.Time{late}, at))
}

func TestCompute(t *testing.T) {
	entries := []*entry.Entry{
		{ID: "1", Tags: []string{"a", "b"}, CreatedAt: entry.At(daysAgo(0, 9))},
		{ID: "2", Tags: []string{"b", "c"}, CreatedAt: entry.At(daysAgo(1, 9))},
		{ID: "3", Tags: []string{}, CreatedAt: entry.At(daysAgo(4, 9))},
	}
	got := Compute(entries, now)
	assert.Equal(t, Stats{TotalEntries: 3, TotalTags: 3, StreakDays: 2}, got)
	assert.Equal(t, Stats{}, Compute(nil, now))
}
