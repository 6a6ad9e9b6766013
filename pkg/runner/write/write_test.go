package write

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/composer"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/logging"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(store.PathConfig(t.TempDir()), store.WithLogger(logging.Discard()))
	require.NoError(t, err)
	svc := &app.Service{Persistence: p, Log: logging.Discard()}
	require.NoError(t, svc.Init(context.Background()))
	return svc
}

func TestWriteSubmits(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	var out bytes.Buffer

	w := Write{
		Content:       "walked by the river",
		Mood:          "happy",
		Tags:          []string{"walk", " walk "},
		AutosaveDelay: time.Hour,
		JSON:          true,
		Service:       svc,
		Out:           &out,
	}
	require.NoError(t, w.Do(ctx))

	var got entry.Entry
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, "walked by the river", got.Content)
	require.Equal(t, mood.Happy, got.Mood)
	require.Equal(t, []string{"walk"}, got.Tags)

	all, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	d, err := svc.Draft(ctx)
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestWriteFromStdin(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	w := Write{
		Stdin:         strings.NewReader("long day\n"),
		AutosaveDelay: time.Hour,
		Service:       svc,
		Out:           &bytes.Buffer{},
	}
	require.NoError(t, w.Do(ctx))

	all, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, mood.Default, all[0].Mood)
}

func TestWriteEmptyRejected(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	w := Write{Content: "   ", AutosaveDelay: time.Hour, Service: svc, Out: &bytes.Buffer{}}
	err := w.Do(ctx)
	require.ErrorIs(t, err, composer.ErrEmptyContent)

	all, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestWriteUnknownMood(t *testing.T) {
	svc := newService(t)
	w := Write{Content: "x", Mood: "grumpy", AutosaveDelay: time.Hour, Service: svc, Out: &bytes.Buffer{}}
	require.ErrorIs(t, w.Do(context.Background()), mood.ErrUnknown)
}

func TestWriteDraftThenSubmit(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	draft := Write{Content: "half a thought", Mood: "thinking", DraftOnly: true, AutosaveDelay: time.Hour, Service: svc, Out: &bytes.Buffer{}}
	require.NoError(t, draft.Do(ctx))

	d, err := svc.Draft(ctx)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, "half a thought", d.Content)

	all, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	// No content given: the restored draft is what gets submitted.
	submit := Write{AutosaveDelay: time.Hour, Service: svc, Out: &bytes.Buffer{}}
	require.NoError(t, submit.Do(ctx))

	all, err = svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "half a thought", all[0].Content)
	require.Equal(t, mood.Thinking, all[0].Mood)
}

func TestWriteNoService(t *testing.T) {
	w := Write{Content: "x"}
	if err := w.Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a service")
	}
}

type stuckDraft struct {
	store.Persistence
}

func (stuckDraft) ClearDraft(context.Context) error { return errors.New("read-only") }

func TestWriteReportsCommittedEntryWhenDraftStays(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	svc.Persistence = stuckDraft{svc.Persistence}

	var out bytes.Buffer
	w := Write{Content: "once", AutosaveDelay: time.Hour, Service: svc, Out: &out}
	require.Error(t, w.Do(ctx))

	all, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Contains(t, out.String(), "saved entry "+all[0].ID)
}
