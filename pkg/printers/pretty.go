// Package printers renders diary data for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/timeline"
)

const (
	defaultWidth = 72
	previewWidth = 48
	timeLayout   = "01-02 15:04"
)

var spacing = strings.Repeat(" ", len("9f1c7a52-8c1e-4bd8-9a6e-2f0d3b1f5e77  "))

// PrettyPrint writes human readable output. Mood colors are only emitted when
// Out is a terminal.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	Width  int

	profile termenv.Profile
}

// New returns a PrettyPrint for w, defaulting to color.Output.
func New(w io.Writer, showID bool) *PrettyPrint {
	if w == nil {
		w = color.Output
	}
	pp := &PrettyPrint{Out: w, ShowID: showID, Width: defaultWidth, profile: termenv.Ascii}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) && !color.NoColor {
		pp.profile = termenv.EnvColorProfile()
	}
	if w == color.Output && isatty.IsTerminal(os.Stdout.Fd()) && !color.NoColor {
		pp.profile = termenv.EnvColorProfile()
	}
	return pp
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Mood renders the emoji and label in the mood color.
func (pp *PrettyPrint) Mood(id mood.ID) string {
	m := mood.Resolve(id)
	label := pp.profile.String(m.Label).Foreground(pp.profile.Color(m.RGB().Hex()))
	return m.Emoji + " " + label.String()
}

func (pp *PrettyPrint) tags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return color.New(color.FgCyan).Sprint("#" + strings.Join(tags, " #"))
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Entries prints one line per entry: time, mood, a content preview and tags.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), e.ID)
			if pad := len(spacing) - len(e.ID); pad > 0 {
				_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
			}
		}
		preview := strings.Join(strings.Fields(e.Content), " ")
		preview = truncate.StringWithTail(preview, previewWidth, "…")
		_, _ = f.Fprintf(pp.out(), "%s ", e.CreatedAt.Local().Format(timeLayout))
		_, _ = t.Fprintf(pp.out(), "%s  %s", pp.Mood(e.Mood), preview)
		if len(e.Tags) > 0 {
			_, _ = t.Fprintf(pp.out(), "  %s", pp.tags(e.Tags))
		}
		if len(e.Images) > 0 {
			_, _ = f.Fprintf(pp.out(), "  [%d img]", len(e.Images))
		}
		_, _ = t.Fprintln(pp.out())
	}
	_, _ = t.Fprintln(pp.out())
}

// Entry prints a single entry in full.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = b.Fprintf(pp.out(), "%s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), pp.Mood(e.Mood))
	if pp.ShowID {
		_, _ = f.Fprintf(pp.out(), "id: %s\n", e.ID)
	}
	if !e.UpdatedAt.Equal(e.CreatedAt.Time) && !e.UpdatedAt.IsZero() {
		_, _ = f.Fprintf(pp.out(), "edited %s\n", e.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	_, _ = fmt.Fprintln(pp.out())
	body := wordwrap.String(e.Content, pp.width()-2)
	_, _ = fmt.Fprintln(pp.out(), indent.String(body, 2))
	_, _ = fmt.Fprintln(pp.out())
	if len(e.Tags) > 0 {
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", pp.tags(e.Tags))
	}
	if len(e.Images) > 0 {
		_, _ = f.Fprintf(pp.out(), "  %d image(s) attached\n", len(e.Images))
	}
}

// Timeline prints the month groups of v, newest first.
func (pp *PrettyPrint) Timeline(v timeline.View) {
	f := color.New(color.Faint)
	if v.Filter.Active() {
		_, _ = f.Fprintf(pp.out(), "showing %d of %d entries\n\n", v.Shown, v.Total)
	}
	if len(v.Groups) == 0 {
		pp.none()
		return
	}
	for _, g := range v.Groups {
		pp.TitleWithCount(g.Label, len(g.Entries))
		pp.Entries(g.Entries...)
	}
}

// Tags prints tags one per line.
func (pp *PrettyPrint) Tags(tags []string) {
	if len(tags) == 0 {
		pp.none()
		return
	}
	for _, t := range tags {
		_, _ = fmt.Fprintln(pp.out(), pp.tags([]string{t}))
	}
}

// Draft prints the saved draft, if any.
func (pp *PrettyPrint) Draft(d *entry.Draft) {
	if d == nil || d.Empty() {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "no draft")
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "saved %s\n", d.SavedAt.Local().Format("2006-01-02 15:04:05"))
	if d.Mood != "" {
		_, _ = fmt.Fprintln(pp.out(), pp.Mood(d.Mood))
	}
	_, _ = fmt.Fprintln(pp.out(), indent.String(wordwrap.String(d.Content, pp.width()-2), 2))
	if len(d.Tags) > 0 {
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", pp.tags(d.Tags))
	}
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
