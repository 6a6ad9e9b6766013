// Package timeline filters entries and groups them by month for display.
// Everything here is a pure function of its inputs; callers reload and
// recompute after every change.
package timeline

import (
	"strings"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/timeutil"
)

// Filter narrows the timeline. Every zero field lets all entries through.
type Filter struct {
	Keyword string
	Tag     string
	Mood    mood.ID
}

// Active reports whether any filter is set.
func (f Filter) Active() bool {
	return strings.TrimSpace(f.Keyword) != "" || f.Tag != "" || f.Mood != ""
}

// Match applies keyword, tag and mood in that order; all must pass.
func (f Filter) Match(e *entry.Entry) bool {
	if e == nil {
		return false
	}
	if k := strings.TrimSpace(f.Keyword); k != "" && !e.Matches(k) {
		return false
	}
	if f.Tag != "" && !e.HasTag(f.Tag) {
		return false
	}
	if f.Mood != "" && e.Mood != f.Mood {
		return false
	}
	return true
}

// Apply returns the entries matching f, keeping their order.
func Apply(all []*entry.Entry, f Filter) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Group is one calendar month of entries.
type Group struct {
	Key     string         `json:"key"`
	Label   string         `json:"label"`
	Entries []*entry.Entry `json:"entries"`
}

// GroupByMonth buckets entries by their local year-month. Groups are emitted in
// the order their first entry appears, so newest-first input produces
// newest-first groups.
func GroupByMonth(entries []*entry.Entry) []Group {
	return groupIn(entries, time.Local)
}

func groupIn(entries []*entry.Entry, loc *time.Location) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, e := range entries {
		if e == nil {
			continue
		}
		t := e.CreatedAt.In(loc)
		k := timeutil.MonthKey(t)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k, Label: timeutil.MonthLabel(t)})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// View is the filtered, grouped timeline plus what the filter bar needs.
type View struct {
	Filter Filter   `json:"filter"`
	Total  int      `json:"total"`
	Shown  int      `json:"shown"`
	Tags   []string `json:"tags"`
	Groups []Group  `json:"groups"`
}

// Build filters all and groups the result. tags is the full tag list offered
// by the filter bar.
func Build(all []*entry.Entry, tags []string, f Filter) View {
	filtered := Apply(all, f)
	return View{
		Filter: f,
		Total:  len(all),
		Shown:  len(filtered),
		Tags:   tags,
		Groups: GroupByMonth(filtered),
	}
}
