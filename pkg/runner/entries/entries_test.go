package entries

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/logging"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/store"
)

func init() {
	color.NoColor = true
}

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(store.PathConfig(t.TempDir()), store.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return &app.Service{Persistence: p, Log: logging.Discard()}
}

func add(t *testing.T, svc *app.Service, content string, tags ...string) string {
	t.Helper()
	id, err := svc.Persistence.AddEntry(context.Background(), entry.Fields{Content: content, Mood: mood.Happy, Tags: tags})
	if err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}
	return id
}

func TestShowAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	keep := add(t, svc, "keep me")
	drop := add(t, svc, "drop me")

	var out bytes.Buffer
	show := Show{ID: drop, Service: svc, Out: &out}
	if err := show.Do(ctx); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out.String(), "drop me") {
		t.Fatalf("expected content in output, got %q", out.String())
	}

	out.Reset()
	del := Delete{ID: drop, JSON: true, Service: svc, Out: &out}
	if err := del.Do(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var got struct {
		Deleted   string `json:"deleted"`
		Remaining int    `json:"remaining"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Deleted != drop || got.Remaining != 1 {
		t.Fatalf("unexpected delete result %+v", got)
	}

	// Deleting twice is not an error.
	if err := del.Do(ctx); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	show.ID = keep
	if err := show.Do(ctx); err != nil {
		t.Fatalf("show kept entry: %v", err)
	}
	show.ID = drop
	if err := show.Do(ctx); err == nil {
		t.Fatalf("expected not found for deleted entry")
	}
}

func TestTags(t *testing.T) {
	svc := newService(t)
	add(t, svc, "a", "walk", "river")
	add(t, svc, "b", "walk")

	var out bytes.Buffer
	tags := Tags{JSON: true, Service: svc, Out: &out}
	if err := tags.Do(context.Background()); err != nil {
		t.Fatalf("tags: %v", err)
	}
	var got []string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct tags, got %v", got)
	}
}

func TestDraftClear(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	if err := svc.Persistence.SaveDraft(ctx, entry.Draft{Content: "half"}); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	var out bytes.Buffer
	show := Draft{Service: svc, Out: &out}
	if err := show.Do(ctx); err != nil {
		t.Fatalf("draft: %v", err)
	}
	if !strings.Contains(out.String(), "half") {
		t.Fatalf("expected draft content, got %q", out.String())
	}

	discard := Draft{Clear: true, Service: svc, Out: &out}
	if err := discard.Do(ctx); err != nil {
		t.Fatalf("clear draft: %v", err)
	}
	d, err := svc.Draft(ctx)
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if d != nil {
		t.Fatalf("expected no draft, got %+v", d)
	}
}

func TestClearNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	add(t, svc, "precious")

	c := Clear{Service: svc, Out: &bytes.Buffer{}}
	if err := c.Do(ctx); err == nil {
		t.Fatalf("expected clear without confirmation to fail")
	}
	all, _ := svc.Entries(ctx)
	if len(all) != 1 {
		t.Fatalf("expected entry to survive, got %d", len(all))
	}

	c.Confirmed = true
	if err := c.Do(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all, _ = svc.Entries(ctx)
	if len(all) != 0 {
		t.Fatalf("expected no entries, got %d", len(all))
	}
}
