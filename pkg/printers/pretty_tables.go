package printers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/knowledge"
	"tableflip.dev/diary/pkg/portability"
	"tableflip.dev/diary/pkg/profile"
)

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	return tbl
}

// Summary prints the headline numbers, the mood breakdown and entries per
// month.
func (pp *PrettyPrint) Summary(s app.Summary) {
	bold := color.New(color.Bold)

	tbl := pp.table()
	tbl.AddRow(bold.Sprint("Entries"), s.TotalEntries)
	tbl.AddRow(bold.Sprint("Tags"), s.TotalTags)
	tbl.AddRow(bold.Sprint("Streak"), fmt.Sprintf("%d day(s)", s.StreakDays))
	tbl.AddRow(bold.Sprint("Favorite cards"), s.FavoriteCards)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	if len(s.Moods) > 0 {
		pp.NewLine()
		pp.Title("Moods")
		moods := pp.table()
		for _, m := range s.Moods {
			moods.AddRow(pp.Mood(m.Mood.ID), m.Count)
		}
		_, _ = fmt.Fprintln(pp.out(), moods)
	}

	if len(s.Months) > 0 {
		pp.NewLine()
		pp.Title("Months")
		months := pp.table()
		for _, m := range s.Months {
			months.AddRow(m.Label, m.Count)
		}
		months.RightAlign(1)
		_, _ = fmt.Fprintln(pp.out(), months)
	}
}

// Cards prints a card list with the favorite marker.
func (pp *PrettyPrint) Cards(cards []knowledge.Card) {
	if len(cards) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow)
	f := color.New(color.Faint)

	tbl := pp.table()
	for _, c := range cards {
		star := " "
		if c.IsFavorite {
			star = y.Sprint("★")
		}
		row := []interface{}{star, c.Title, f.Sprint(c.Category)}
		if pp.ShowID {
			row = append([]interface{}{f.Sprint(c.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Card prints one card in full. pos and total are 1-based cursor info; a zero
// total omits it.
func (pp *PrettyPrint) Card(c knowledge.Card, pos, total int) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	title := c.Title
	if c.IsFavorite {
		title += " " + color.New(color.FgHiYellow).Sprint("★")
	}
	_, _ = b.Fprintln(pp.out(), title)
	meta := c.Category
	if total > 0 {
		meta += "  " + strconv.Itoa(pos) + "/" + strconv.Itoa(total)
	}
	_, _ = f.Fprintln(pp.out(), meta)
	pp.NewLine()
	_, _ = fmt.Fprintln(pp.out(), indent.String(wordwrap.String(c.Content, pp.width()-2), 2))
	if c.Author != "" {
		_, _ = f.Fprintf(pp.out(), "\n  - %s\n", c.Author)
	}
	pp.NewLine()
}

// Profile prints the profile sections.
func (pp *PrettyPrint) Profile(p *profile.Profile) {
	if p == nil {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "no profile yet")
		return
	}
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(pp.out(), p.String())
	pp.NewLine()

	section := func(title string, rows ...[2]string) {
		pp.Title(title)
		tbl := pp.table()
		tbl.Wrap = true
		tbl.MaxColWidth = uint(pp.width() - 16)
		for _, r := range rows {
			v := r[1]
			if strings.TrimSpace(v) == "" {
				v = color.New(color.Faint).Sprint("-")
			}
			tbl.AddRow(r[0], v)
		}
		tbl.RightAlign(0)
		_, _ = fmt.Fprintln(pp.out(), tbl)
		pp.NewLine()
	}
	section("Basics",
		[2]string{"birthday", p.Basics.Birthday},
		[2]string{"sleep", p.Basics.Sleep},
		[2]string{"energy", p.Basics.EnergySource},
	)
	section("Personality",
		[2]string{"strengths", p.Personality.Strengths},
		[2]string{"weaknesses", p.Personality.Weaknesses},
	)
	section("Values",
		[2]string{"motto", p.Values.Motto},
		[2]string{"meaning", p.Values.LifeMeaning},
	)
}

// Settings prints the preference record.
func (pp *PrettyPrint) Settings(s profile.Settings) {
	tbl := pp.table()
	tbl.AddRow("theme", string(s.Theme))
	tbl.AddRow("notifications", s.Notifications)
	tbl.AddRow("autosave", s.AutoSave)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// ImportReport prints the outcome of an import.
func (pp *PrettyPrint) ImportReport(r *portability.Report) {
	if r == nil {
		return
	}
	verb := "imported"
	if r.DryRun {
		verb = "would import"
	}
	_, _ = fmt.Fprintf(pp.out(), "%s %d of %d entries, skipped %d\n", verb, r.Inserted, r.Total, r.Skipped)
	f := color.New(color.Faint)
	for _, id := range r.Conflicts {
		_, _ = f.Fprintf(pp.out(), "  exists: %s\n", id)
	}
}
