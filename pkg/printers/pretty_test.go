package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/knowledge"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/portability"
	"tableflip.dev/diary/pkg/stats"
	"tableflip.dev/diary/pkg/timeline"
)

func newTestPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	var buf bytes.Buffer
	return New(&buf, false), &buf
}

func TestEntriesPreview(t *testing.T) {
	pp, buf := newTestPrinter(t)
	long := strings.Repeat("word ", 40)
	pp.Entries(&entry.Entry{
		ID:        "a",
		Content:   "line one\nline two " + long,
		Mood:      mood.Happy,
		Tags:      []string{"life", "books"},
		Images:    []string{"data:image/png;base64,AA=="},
		CreatedAt: entry.At(time.Date(2026, 10, 18, 9, 5, 0, 0, time.Local)),
	})

	out := buf.String()
	for _, want := range []string{"10-18 09:05", "😊 开心", "line one line two", "…", "#life #books", "[1 img]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected escape codes in %q", out)
	}
}

func TestEntriesEmpty(t *testing.T) {
	pp, buf := newTestPrinter(t)
	pp.Entries()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestUnknownMoodFallback(t *testing.T) {
	pp, _ := newTestPrinter(t)
	if got := pp.Mood("weird"); got != "😐 未知" {
		t.Fatalf("unexpected fallback %q", got)
	}
}

func TestTimelineShowsFilterCounts(t *testing.T) {
	pp, buf := newTestPrinter(t)
	e := &entry.Entry{ID: "a", Content: "x", Mood: mood.Calm, CreatedAt: entry.At(time.Date(2026, 10, 1, 9, 0, 0, 0, time.Local))}
	pp.Timeline(timeline.Build([]*entry.Entry{e}, nil, timeline.Filter{Keyword: "x"}))
	out := buf.String()
	if !strings.Contains(out, "showing 1 of 1 entries") || !strings.Contains(out, "2026年10月 - 1 entry") {
		t.Fatalf("unexpected timeline output %q", out)
	}
}

func TestCalendarMarksDays(t *testing.T) {
	pp, buf := newTestPrinter(t)
	month := time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local)
	pp.Calendar(month, month.AddDate(0, 0, 17))
	out := buf.String()
	if !strings.Contains(out, "2026年10月") || !strings.Contains(out, "31") {
		t.Fatalf("unexpected calendar %q", out)
	}
	if DaysIn(time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC)) != 29 {
		t.Fatal("expected leap february")
	}
	if StartDay(month) != time.Thursday {
		t.Fatalf("october 2026 starts on thursday, got %s", StartDay(month))
	}
}

func TestSummaryAndCards(t *testing.T) {
	pp, buf := newTestPrinter(t)
	pp.Summary(app.Summary{
		Stats:         stats.Stats{TotalEntries: 3, TotalTags: 2, StreakDays: 2},
		FavoriteCards: 1,
		Moods:         []app.MoodCount{{Mood: mood.Resolve(mood.Happy), Count: 3}},
	})
	pp.Cards([]knowledge.Card{{ID: "c1", Title: "Flow", Category: knowledge.CategoryPsychology, IsFavorite: true}})
	out := buf.String()
	for _, want := range []string{"Entries", "2 day(s)", "Favorite cards", "Moods", "Flow", "★"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestImportReport(t *testing.T) {
	pp, buf := newTestPrinter(t)
	pp.ImportReport(&portability.Report{Total: 3, Inserted: 2, Skipped: 1, Conflicts: []string{"a"}, DryRun: true})
	out := buf.String()
	if !strings.Contains(out, "would import 2 of 3 entries, skipped 1") || !strings.Contains(out, "exists: a") {
		t.Fatalf("unexpected report %q", out)
	}
}
