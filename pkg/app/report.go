package app

import (
	"context"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/stats"
	"tableflip.dev/diary/pkg/timeutil"
)

// MoodCount is the number of entries recorded with one mood.
type MoodCount struct {
	Mood  mood.Mood `json:"mood"`
	Count int       `json:"count"`
}

// MonthCount is the number of entries created in one month.
type MonthCount struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary is the profile page overview.
type Summary struct {
	stats.Stats
	FavoriteCards int          `json:"favoriteCards"`
	Moods         []MoodCount  `json:"moods"`
	Months        []MonthCount `json:"months"`
}

// Summary computes the statistics after the entries have loaded.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	if err := s.ready(); err != nil {
		return Summary{}, err
	}
	all, err := s.Persistence.ListEntries(ctx)
	if err != nil {
		return Summary{}, err
	}
	favs, err := s.Persistence.FavoriteCards(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Stats:         stats.Compute(all, s.now()),
		FavoriteCards: len(favs),
		Moods:         countMoods(all),
		Months:        countMonths(all),
	}, nil
}

// countMoods follows the catalog order; moods outside the catalog come last
// in order of first appearance. Moods without entries are left out.
func countMoods(all []*entry.Entry) []MoodCount {
	counts := make(map[mood.ID]int)
	var unknown []mood.ID
	for _, e := range all {
		if _, seen := counts[e.Mood]; !seen && !e.Mood.Known() {
			unknown = append(unknown, e.Mood)
		}
		counts[e.Mood]++
	}
	var out []MoodCount
	for _, m := range mood.All() {
		if n := counts[m.ID]; n > 0 {
			out = append(out, MoodCount{Mood: m, Count: n})
		}
	}
	for _, id := range unknown {
		out = append(out, MoodCount{Mood: mood.Resolve(id), Count: counts[id]})
	}
	return out
}

// countMonths expects all newest first and keeps that order.
func countMonths(all []*entry.Entry) []MonthCount {
	var out []MonthCount
	for _, e := range all {
		local := e.CreatedAt.Local()
		key := timeutil.MonthKey(local)
		if n := len(out); n > 0 && out[n-1].Key == key {
			out[n-1].Count++
			continue
		}
		out = append(out, MonthCount{Key: key, Label: timeutil.MonthLabel(local), Count: 1})
	}
	return out
}
