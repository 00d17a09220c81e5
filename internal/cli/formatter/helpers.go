package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID shortens a full UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatDate renders a date as YYYY-MM-DD, or a dim dash for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Dim("--")
	}
	return t.Format(dateLayout)
}

// FormatOptionalDate renders an optional date, dimming the absent case.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return t.Format(dateLayout)
}

// FormatDateRange renders "start → end" for a task's date span.
func FormatDateRange(start, end time.Time) string {
	return FormatDate(start) + " " + Dim("→") + " " + FormatDate(end)
}
