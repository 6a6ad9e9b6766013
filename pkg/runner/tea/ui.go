package teaui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/diary/pkg/knowledge"
)

// Favoriter persists favorite toggles.
type Favoriter interface {
	ToggleFavorite(ctx context.Context, id string) (favorite, found bool, err error)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	starStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
	tabStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeTab  = tabStyle.Copy().Bold(true).Underline(true)
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#87CEEB")).Padding(1, 2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

const (
	defaultWidth  = 64
	minCardWidth  = 24
	cardChromeLen = 6 // border plus horizontal padding
)

// favoriteMsg reports the outcome of a persisted toggle.
type favoriteMsg struct {
	id       string
	favorite bool
	found    bool
	err      error
}

// Model is the card carousel: a category bar, the current card and a help
// line.
type Model struct {
	ctx     context.Context
	store   Favoriter
	browser *knowledge.Browser

	width  int
	status string
}

func New(ctx context.Context, store Favoriter, b *knowledge.Browser) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if b == nil {
		b = knowledge.NewBrowser(nil)
	}
	return Model{ctx: ctx, store: store, browser: b, width: defaultWidth}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case favoriteMsg:
		switch {
		case msg.err != nil:
			m.status = errorStyle.Render("favorite failed: " + msg.err.Error())
		case !msg.found:
			m.status = "card no longer exists"
		default:
			// Flip locally, then settle on the stored value.
			if fav, ok := m.browser.ToggleFavorite(msg.id); ok && fav != msg.favorite {
				m.browser.ToggleFavorite(msg.id)
			}
			m.status = ""
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ":
			m.browser.Next()
		case "left", "h", "p":
			m.browser.Prev()
		case "tab":
			m.shiftCategory(1)
		case "shift+tab":
			m.shiftCategory(-1)
		case "f":
			cur, ok := m.browser.Current()
			if !ok || m.store == nil {
				return m, nil
			}
			return m, m.toggle(cur.ID)
		}
	}
	return m, nil
}

func (m *Model) shiftCategory(delta int) {
	cats := knowledge.Categories()
	i := 0
	for j, c := range cats {
		if c == m.browser.Category() {
			i = j
		}
	}
	i = ((i+delta)%len(cats) + len(cats)) % len(cats)
	_ = m.browser.SetCategory(cats[i])
	m.status = ""
}

func (m Model) toggle(id string) tea.Cmd {
	return func() tea.Msg {
		fav, found, err := m.store.ToggleFavorite(m.ctx, id)
		return favoriteMsg{id: id, favorite: fav, found: found, err: err}
	}
}

func (m Model) View() string {
	var tabs []string
	for _, c := range knowledge.Categories() {
		if c == m.browser.Category() {
			tabs = append(tabs, activeTab.Render(c))
		} else {
			tabs = append(tabs, tabStyle.Render(c))
		}
	}

	w := m.width
	if w < minCardWidth+cardChromeLen {
		w = minCardWidth + cardChromeLen
	}
	inner := w - cardChromeLen

	var body string
	if cur, ok := m.browser.Current(); ok {
		title := titleStyle.Render(cur.Title)
		if cur.IsFavorite {
			title += " " + starStyle.Render("★")
		}
		parts := []string{title, "", wordwrap.String(cur.Content, inner)}
		if cur.Author != "" {
			parts = append(parts, "", faintStyle.Render("- "+cur.Author))
		}
		parts = append(parts, "", faintStyle.Render(fmt.Sprintf("%d / %d", m.browser.Index()+1, m.browser.Len())))
		body = cardStyle.Width(inner).Render(strings.Join(parts, "\n"))
	} else {
		body = cardStyle.Width(inner).Render(faintStyle.Render("no cards in this category"))
	}

	help := faintStyle.Render("←/→ card  tab category  f favorite  q quit")
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, tabs...), body, help}
	if m.status != "" {
		lines = append(lines, m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
