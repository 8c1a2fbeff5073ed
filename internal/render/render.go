// Package render turns conversion results and month grids into
// terminal-ready strings. It never prints; the CLI layer owns stdout.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Armin-kho/scal/internal/calendar"
	"github.com/Armin-kho/scal/internal/utils"
)

// Options control styling of rendered output.
type Options struct {
	NoColor       bool
	PersianDigits bool
}

// gridWidth is seven 2-char day cells with single-space gutters.
const gridWidth = 7*2 + 6

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	offday lipgloss.Style
	today  lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		// Zero styles render their input unchanged.
		return styles{}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Faint(true),
		offday: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		today:  lipgloss.NewStyle().Reverse(true).Bold(true),
	}
}

func (o Options) digits(s string) string {
	if o.PersianDigits {
		return utils.ToPersianDigits(s)
	}
	return s
}

// longForm spells a date out, e.g. "Thursday, 22 Tir 1402".
func longForm(d calendar.Date, o Options) string {
	return fmt.Sprintf("%s, %s %s %s",
		d.Weekday(),
		o.digits(fmt.Sprintf("%d", d.Day)),
		calendar.MonthName(d.System, d.Month),
		o.digits(fmt.Sprintf("%d", d.Year)))
}

// Conversion renders a one-line conversion result in the form
// "Gregorian 2023-07-13 is Shamsi 1402-04-22 (Thursday, 22 Tir 1402)".
func Conversion(from, to calendar.Date, o Options) string {
	return fmt.Sprintf("%s %s is %s %s (%s)",
		from.System, o.digits(from.String()),
		to.System, o.digits(to.String()),
		longForm(to, o))
}

// Today renders today's date in both calendars, one line per system.
func Today(g, s calendar.Date, o Options) string {
	return fmt.Sprintf("Gregorian: %s (%s)\nShamsi:    %s (%s)",
		o.digits(g.String()), longForm(g, o),
		o.digits(s.String()), longForm(s, o))
}

var shamsiWeekHeader = [7]string{"Sa", "Su", "Mo", "Tu", "We", "Th", "Fr"}
var gregorianWeekHeader = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// weekColumn maps a weekday onto its grid column: Saturday-first for
// Shamsi grids, Sunday-first for Gregorian ones.
func weekColumn(sys calendar.System, wd time.Weekday) int {
	if sys == calendar.Shamsi {
		return (int(wd) + 1) % 7
	}
	return int(wd)
}

// offColumn reports whether a grid column is a rest day: Friday in the
// Iranian week, Saturday/Sunday in the Gregorian one.
func offColumn(sys calendar.System, col int) bool {
	if sys == calendar.Shamsi {
		return col == 6
	}
	return col == 0 || col == 6
}

// MonthGrid renders one month as a cal-style grid. highlight marks a
// day of the month (0 for none).
func MonthGrid(sys calendar.System, year, month, highlight int, o Options) (string, error) {
	days, err := calendar.DaysInMonth(sys, year, month)
	if err != nil {
		return "", err
	}
	st := newStyles(o.NoColor)

	title := fmt.Sprintf("%s %s", calendar.MonthName(sys, month), o.digits(fmt.Sprintf("%d", year)))
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, st.title.Render(title)))
	b.WriteByte('\n')

	head := make([]string, 7)
	for i, wd := range weekHeader(sys) {
		head[i] = st.header.Render(wd)
	}
	b.WriteString(strings.Join(head, " "))
	b.WriteByte('\n')

	first := calendar.Date{Year: year, Month: month, Day: 1, System: sys}
	col := weekColumn(sys, first.Weekday())

	cells := make([]string, 0, 7)
	for i := 0; i < col; i++ {
		cells = append(cells, "  ")
	}
	for day := 1; day <= days; day++ {
		cell := o.digits(fmt.Sprintf("%2d", day))
		switch {
		case day == highlight:
			cell = st.today.Render(cell)
		case offColumn(sys, col):
			cell = st.offday.Render(cell)
		}
		cells = append(cells, cell)
		col++
		if col == 7 {
			b.WriteString(strings.Join(cells, " "))
			b.WriteByte('\n')
			cells = cells[:0]
			col = 0
		}
	}
	if len(cells) > 0 {
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// YearGrid renders all twelve months of a year, stacked. highlightMonth
// and highlightDay mark today when it falls inside the year (0 for none).
func YearGrid(sys calendar.System, year, highlightMonth, highlightDay int, o Options) (string, error) {
	grids := make([]string, 0, 12)
	for month := 1; month <= 12; month++ {
		h := 0
		if month == highlightMonth {
			h = highlightDay
		}
		g, err := MonthGrid(sys, year, month, h, o)
		if err != nil {
			return "", err
		}
		grids = append(grids, g)
	}
	return strings.Join(grids, "\n\n"), nil
}

func weekHeader(sys calendar.System) [7]string {
	if sys == calendar.Shamsi {
		return shamsiWeekHeader
	}
	return gregorianWeekHeader
}
