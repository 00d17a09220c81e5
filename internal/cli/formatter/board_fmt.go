package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/projections"
	"github.com/charmbracelet/lipgloss"
)

const boardColWidth = 24

// FormatBoard renders the kanban view: one bordered column per status,
// joined side by side.
func FormatBoard(cols []projections.BoardColumn) string {
	rendered := make([]string, 0, len(cols))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(boardColWidth)

	for _, col := range cols {
		label := strings.ReplaceAll(string(col.Status), "_", " ")
		title := StatusColor(col.Status).Bold(true).Render(strings.ToUpper(label))
		count := Dim(fmt.Sprintf("(%d)", len(col.Tasks)))

		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", title, count)
		for _, t := range col.Tasks {
			name := t.Name
			if lipgloss.Width(name) > boardColWidth-4 {
				name = name[:boardColWidth-5] + "…"
			}
			fmt.Fprintf(&b, "\n%s\n%s", Bold(name), RenderProgress(t.Progress, 8))
		}
		if len(col.Tasks) == 0 {
			b.WriteString("\n" + Dim("empty"))
		}

		rendered = append(rendered, cardStyle.Render(b.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
