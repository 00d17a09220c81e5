package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/projections"
	"github.com/charmbracelet/lipgloss"
)

const calendarCellWidth = 10

// FormatCalendar renders a month grid, Monday first. Each cell shows the
// day number and a per-day task count; the selected day is highlighted.
func FormatCalendar(month projections.CalendarMonth, selected time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", month.Month, month.Year)
	b.WriteString(Header(title) + "\n")

	for _, wd := range []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"} {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-*s", calendarCellWidth, wd)))
	}
	b.WriteString("\n")

	if len(month.Days) == 0 {
		return b.String()
	}

	// Leading blanks for the weekday of the 1st.
	first := month.Days[0].Date
	lead := (int(first.Weekday()) + 6) % 7
	col := lead
	b.WriteString(strings.Repeat(" ", lead*calendarCellWidth))

	for _, day := range month.Days {
		cell := fmt.Sprintf("%2d", day.Date.Day())
		if len(day.Tasks) > 0 {
			cell += fmt.Sprintf(" ·%d", len(day.Tasks))
		}

		style := StyleFg
		if len(day.Tasks) > 0 {
			style = StyleGreen
		}
		if sameDay(day.Date, selected) {
			style = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
		}

		pad := calendarCellWidth - lipgloss.Width(cell)
		b.WriteString(style.Render(cell) + strings.Repeat(" ", pad))

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
