package entry

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tableflip.dev/diary/pkg/mood"
)

func TestNewNormalizesTags(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 123456789, time.Local)
	e := New("a", Fields{Content: "hi", Mood: mood.Happy, Tags: []string{" work ", "", "work", "life"}}, now)
	if len(e.Tags) != 2 || e.Tags[0] != "work" || e.Tags[1] != "life" {
		t.Fatalf("unexpected tags %v", e.Tags)
	}
	if !e.CreatedAt.Equal(e.UpdatedAt.Time) {
		t.Fatalf("expected equal timestamps")
	}
	if e.CreatedAt.Nanosecond()%int(time.Millisecond) != 0 {
		t.Fatalf("expected millisecond precision, got %v", e.CreatedAt)
	}
	if e.Images != nil {
		t.Fatalf("expected images omitted")
	}
}

func TestApplyKeepsIdentity(t *testing.T) {
	created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.Local)
	e := New("a", Fields{Content: "before", Mood: mood.Sad}, created)
	content := "after"
	m := mood.Happy
	later := created.Add(time.Hour)
	e.Apply(Patch{Content: &content, Mood: &m}, later)

	if e.ID != "a" || !e.CreatedAt.Equal(created) {
		t.Fatalf("identity changed: %s %v", e.ID, e.CreatedAt)
	}
	if e.Content != "after" || e.Mood != mood.Happy {
		t.Fatalf("patch not applied: %+v", e)
	}
	if !e.UpdatedAt.Equal(later) {
		t.Fatalf("expected updatedAt %v, got %v", later, e.UpdatedAt)
	}
}

func TestMatches(t *testing.T) {
	e := &Entry{Content: "Walked the Dog", Tags: []string{"Outdoors"}}
	for _, k := range []string{"", "dog", "WALK", "door"} {
		if !e.Matches(k) {
			t.Fatalf("expected match for %q", k)
		}
	}
	if e.Matches("cat") {
		t.Fatalf("unexpected match")
	}
}

func TestTimestampJSON(t *testing.T) {
	e := New("x", Fields{Content: "c", Mood: mood.Calm}, time.UnixMilli(1760000000123))
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["createdAt"].(float64) != 1760000000123 {
		t.Fatalf("expected millis, got %v", raw["createdAt"])
	}
	if _, ok := raw["images"]; ok {
		t.Fatalf("expected images to be omitted")
	}
	if tags, ok := raw["tags"].([]any); !ok || len(tags) != 0 {
		t.Fatalf("expected empty tag array, got %v", raw["tags"])
	}

	var back Entry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.CreatedAt.Equal(e.CreatedAt.Time) {
		t.Fatalf("expected %v, got %v", e.CreatedAt, back.CreatedAt)
	}
}

func TestTimestampAcceptsRFC3339(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2026-10-18T01:02:03Z"`), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.UTC().Hour() != 1 {
		t.Fatalf("unexpected time %v", ts)
	}
}

func TestTimestampRejectsOutOfRange(t *testing.T) {
	for _, in := range []string{`1e300`, `-1e300`, `9223372036854775807`, `-9.3e18`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err == nil {
			t.Fatalf("expected %s to be rejected, got %v", in, ts)
		}
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`1792281600000`), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ts.UnixMilli(); got != 1792281600000 {
		t.Fatalf("expected 1792281600000, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	ok := New("id-1", Fields{Content: "c"}, time.Now())
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []*Entry{
		{ID: "", CreatedAt: At(time.Now())},
		{ID: "../etc", CreatedAt: At(time.Now())},
		{ID: "..", CreatedAt: At(time.Now())},
		{ID: ".", CreatedAt: At(time.Now())},
		{ID: `a\b`, CreatedAt: At(time.Now())},
		{ID: "x"},
	}
	for _, e := range bad {
		if err := e.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid for %+v, got %v", e, err)
		}
	}
}

func TestDraftFieldsDefaults(t *testing.T) {
	d := Draft{Content: "  hello \n"}
	f := d.Fields()
	if f.Content != "hello" || f.Mood != mood.Default {
		t.Fatalf("unexpected fields %+v", f)
	}
	if !(Draft{}).Empty() {
		t.Fatalf("expected empty draft")
	}
}
