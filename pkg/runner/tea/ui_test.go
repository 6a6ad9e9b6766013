package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/diary/pkg/knowledge"
)

type fakeFavorites struct {
	flags map[string]bool
	err   error
}

func (f *fakeFavorites) ToggleFavorite(_ context.Context, id string) (bool, bool, error) {
	if f.err != nil {
		return false, false, f.err
	}
	v, ok := f.flags[id]
	if !ok {
		return false, false, nil
	}
	f.flags[id] = !v
	return !v, true, nil
}

func seeded() ([]knowledge.Card, *fakeFavorites) {
	n := 0
	cards := knowledge.Seed(func() string {
		n++
		return fmt.Sprintf("card-%d", n)
	})
	flags := make(map[string]bool, len(cards))
	for _, c := range cards {
		flags[c.ID] = c.IsFavorite
	}
	return cards, &fakeFavorites{flags: flags}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestCarouselWraps(t *testing.T) {
	cards, store := seeded()
	m := New(context.Background(), store, knowledge.NewBrowser(cards))

	m, _ = send(t, m, key("left"))
	if got := m.browser.Index(); got != len(cards)-1 {
		t.Fatalf("expected wrap to last card, got %d", got)
	}
	m, _ = send(t, m, key("right"))
	if got := m.browser.Index(); got != 0 {
		t.Fatalf("expected wrap to first card, got %d", got)
	}
}

func TestCategorySwitchResetsCursor(t *testing.T) {
	cards, store := seeded()
	m := New(context.Background(), store, knowledge.NewBrowser(cards))

	m, _ = send(t, m, key("right"), key("right"), key("tab"))
	if m.browser.Category() != knowledge.CategoryPsychology {
		t.Fatalf("expected psychology, got %s", m.browser.Category())
	}
	if m.browser.Index() != 0 {
		t.Fatalf("expected cursor reset, got %d", m.browser.Index())
	}
	m, _ = send(t, m, key("shift+tab"), key("shift+tab"))
	if m.browser.Category() != knowledge.CategoryEmotion {
		t.Fatalf("expected wrap to last category, got %s", m.browser.Category())
	}
}

func TestFavoriteRoundTrip(t *testing.T) {
	cards, store := seeded()
	m := New(context.Background(), store, knowledge.NewBrowser(cards))
	cur, _ := m.browser.Current()

	m, cmd := send(t, m, key("f"))
	if cmd == nil {
		t.Fatal("expected a toggle command")
	}
	m, _ = send(t, m, cmd())
	got, _ := m.browser.Current()
	if got.ID != cur.ID || !got.IsFavorite {
		t.Fatalf("expected %s to become favorite in place, got %+v", cur.ID, got)
	}
	if !store.flags[cur.ID] {
		t.Fatal("toggle was not persisted")
	}
	if !strings.Contains(m.View(), "★") {
		t.Fatal("expected favorite marker in view")
	}
}

func TestFavoriteFailureShowsStatus(t *testing.T) {
	cards, store := seeded()
	store.err = errors.New("disk full")
	m := New(context.Background(), store, knowledge.NewBrowser(cards))

	_, cmd := send(t, m, key("f"))
	m, _ = send(t, m, cmd())
	if cur, _ := m.browser.Current(); cur.IsFavorite {
		t.Fatal("failed toggle must not change the card")
	}
	if !strings.Contains(m.View(), "disk full") {
		t.Fatalf("expected error in view, got %q", m.View())
	}
}

func TestQuit(t *testing.T) {
	m := New(context.Background(), nil, nil)
	_, cmd := send(t, m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if !strings.Contains(m.View(), "no cards") {
		t.Fatal("expected empty state")
	}
}
