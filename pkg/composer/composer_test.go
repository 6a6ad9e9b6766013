package composer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/logging"
	"tableflip.dev/diary/pkg/mood"
)

type fakeStore struct {
	mu       sync.Mutex
	draft    *entry.Draft
	saves    []entry.Draft
	entries  []entry.Fields
	tags     []string
	addErr   error
	clearErr error
	inFlight int
	overlap  bool
	slowSave time.Duration
}

func (f *fakeStore) Draft(context.Context) (*entry.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft == nil {
		return nil, nil
	}
	d := *f.draft
	return &d, nil
}

func (f *fakeStore) SaveDraft(_ context.Context, d entry.Draft) error {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > 1 {
		f.overlap = true
	}
	slow := f.slowSave
	f.mu.Unlock()

	time.Sleep(slow)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight--
	f.saves = append(f.saves, d)
	f.draft = &d
	return nil
}

func (f *fakeStore) ClearDraft(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	f.draft = nil
	return nil
}

func (f *fakeStore) AddEntry(_ context.Context, fields entry.Fields) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return "", f.addErr
	}
	f.entries = append(f.entries, fields)
	return "new-id", nil
}

func (f *fakeStore) Tags(context.Context) ([]string, error) {
	return f.tags, nil
}

func (f *fakeStore) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}

func newComposer(t *testing.T, s *fakeStore, delay time.Duration) *Composer {
	t.Helper()
	c, err := New(context.Background(), s, WithDelay(delay), WithLogger(logging.Discard()))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestRapidEditsSaveOnce(t *testing.T) {
	s := &fakeStore{}
	c := newComposer(t, s, 40*time.Millisecond)

	for _, text := range []string{"T", "To", "Tod", "Toda", "Today"} {
		c.SetContent(text)
		time.Sleep(5 * time.Millisecond)
	}
	c.SetMood(mood.Happy)
	c.AddTag("life")

	require.Eventually(t, func() bool { return s.saveCount() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	require.Equal(t, 1, s.saveCount(), "only the last scheduled autosave runs")
	s.mu.Lock()
	got := s.saves[0]
	s.mu.Unlock()
	assert.Equal(t, "Today", got.Content)
	assert.Equal(t, mood.Happy, got.Mood)
	assert.Equal(t, []string{"life"}, got.Tags)
	assert.False(t, c.State().Pending)
}

func TestAutosaveNeverOverlaps(t *testing.T) {
	s := &fakeStore{slowSave: 30 * time.Millisecond}
	c := newComposer(t, s, 5*time.Millisecond)

	for i := 0; i < 5; i++ {
		c.SetContent(strings.Repeat("x", i+1))
		time.Sleep(15 * time.Millisecond)
	}
	require.NoError(t, c.Flush(context.Background()))

	last := func() string {
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.saves) == 0 {
			return ""
		}
		return s.saves[len(s.saves)-1].Content
	}
	require.Eventually(t, func() bool { return last() == "xxxxx" }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.False(t, s.overlap, "draft saves must be serialized")
	assert.Equal(t, "xxxxx", s.saves[len(s.saves)-1].Content, "a stale snapshot never lands after a newer one")
	for i := 1; i < len(s.saves); i++ {
		assert.Greater(t, len(s.saves[i].Content), len(s.saves[i-1].Content))
	}
}

func TestEmptyStateIsNotAutosaved(t *testing.T) {
	s := &fakeStore{}
	c := newComposer(t, s, 10*time.Millisecond)
	c.SetContent("")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, s.saveCount())
}

func TestLoadsDraftOnce(t *testing.T) {
	s := &fakeStore{draft: &entry.Draft{Content: "half written", Mood: mood.Sad, Tags: []string{"a"}}}
	c := newComposer(t, s, time.Hour)
	st := c.State()
	assert.Equal(t, "half written", st.Content)
	assert.Equal(t, mood.Sad, st.Mood)
	assert.Equal(t, []string{"a"}, st.Tags)

	s.draft = &entry.Draft{Content: "changed elsewhere"}
	assert.Equal(t, "half written", c.State().Content)
}

func TestSubmit(t *testing.T) {
	s := &fakeStore{draft: &entry.Draft{Content: "old"}}
	c := newComposer(t, s, time.Hour)

	c.SetContent("   \n\t ")
	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrEmptyContent)
	assert.Empty(t, s.entries)
	assert.NotNil(t, s.draft, "validation failure must not touch the draft")

	c.SetContent("  A good day  ")
	c.AddTag("good")
	id, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-id", id)
	require.Len(t, s.entries, 1)
	assert.Equal(t, "A good day", s.entries[0].Content)
	assert.Equal(t, mood.Default, s.entries[0].Mood)
	assert.Nil(t, s.entries[0].Images)
	assert.Nil(t, s.draft, "draft cleared after submit")

	st := c.State()
	assert.Empty(t, st.Content)
	assert.False(t, st.Pending)
	assert.Equal(t, 0, s.saveCount(), "submit cancels the pending autosave")
}

func TestSubmitFailureKeepsState(t *testing.T) {
	s := &fakeStore{addErr: errors.New("disk full")}
	c := newComposer(t, s, 10*time.Millisecond)
	c.SetContent("keep me")
	_, err := c.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "keep me", c.State().Content)
	require.Eventually(t, func() bool { return s.saveCount() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestSubmitClearDraftFailureResets(t *testing.T) {
	clearErr := errors.New("read-only")
	s := &fakeStore{draft: &entry.Draft{Content: "restored"}, clearErr: clearErr}
	c := newComposer(t, s, time.Hour)

	id, err := c.Submit(context.Background())
	require.ErrorIs(t, err, clearErr)
	assert.Equal(t, "new-id", id)
	assert.Contains(t, err.Error(), "new-id")
	require.Len(t, s.entries, 1)

	st := c.State()
	assert.Empty(t, st.Content, "committed text must not stay in the composer")
	assert.False(t, st.Pending)

	_, err = c.Submit(context.Background())
	require.ErrorIs(t, err, ErrEmptyContent)
	assert.Len(t, s.entries, 1, "a second submit must not duplicate the entry")
}

func TestTags(t *testing.T) {
	s := &fakeStore{tags: []string{"Work", "workout", "books"}}
	c := newComposer(t, s, time.Hour)
	assert.True(t, c.AddTag(" work "))
	assert.False(t, c.AddTag("work"))
	assert.False(t, c.AddTag("   "))
	assert.Equal(t, []string{"Work", "workout"}, c.Suggestions("WORK"))
	assert.True(t, c.AddTag("Work"))
	assert.Equal(t, []string{"workout"}, c.Suggestions("wor"))
	assert.True(t, c.RemoveTag("work"))
	assert.False(t, c.RemoveTag("work"))
	assert.Equal(t, []string{"Work"}, c.State().Tags)
}

// 1x1 transparent PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestAttachFilesRejectsIndividually(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "pixel.png")
	require.NoError(t, os.WriteFile(small, pngPixel, 0o644))

	big := filepath.Join(dir, "huge.png")
	require.NoError(t, os.WriteFile(big, append(append([]byte{}, pngPixel...), make([]byte, MaxImageSize)...), 0o644))

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("plain text"), 0o644))

	s := &fakeStore{}
	c := newComposer(t, s, time.Hour)
	report := c.AttachFiles([]string{big, small, text, filepath.Join(dir, "missing.png")})

	assert.Equal(t, []string{"pixel.png"}, report.Attached)
	require.Len(t, report.Rejected, 3)
	assert.ErrorIs(t, report.Rejected[0].Err, ErrImageTooLarge)
	assert.ErrorIs(t, report.Rejected[1].Err, ErrNotImage)
	assert.Equal(t, 1, c.State().Images)

	c.SetContent("with picture")
	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Len(t, s.entries[0].Images, 1)
	assert.True(t, strings.HasPrefix(s.entries[0].Images[0], "data:image/png;base64,"))
}

func TestAttachImageFromReader(t *testing.T) {
	c := newComposer(t, &fakeStore{}, time.Hour)
	err := c.AttachImage("stream.png", bytes.NewReader(make([]byte, MaxImageSize+10)))
	assert.ErrorIs(t, err, ErrImageTooLarge)
	require.NoError(t, c.AttachImage("ok.png", bytes.NewReader(pngPixel)))
	assert.True(t, c.RemoveImage(0))
	assert.False(t, c.RemoveImage(0))
}
