package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing then with the days that have at least
// one entry in bold and today underlined.
func (pp *PrettyPrint) Calendar(then, today time.Time, entries ...*entry.Entry) {
	count := make([]int, DaysIn(then))
	for _, e := range entries {
		if e.CreatedAt.SameMonth(then) {
			count[e.CreatedAt.Local().Day()-1]++
		}
	}
	todayIdx := -1
	if timeutil.MonthKey(today) == timeutil.MonthKey(then) {
		todayIdx = today.Day() - 1
	}
	pp.PrintMonthCount(then, count, todayIdx)
}

// PrintMonthCount renders one month grid; count holds entries per day.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int, today int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := timeutil.MonthLabel(then)
	mw := len([]rune(m)) * 2
	mid := (width - mw) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(pp.out(), "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if i == today {
			printer = color.New(color.Underline, color.Bold)
		}
		_, _ = printer.Fprintf(pp.out(), "%2d", i+1)
		_, _ = fmt.Fprint(pp.out(), " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
