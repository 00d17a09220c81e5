package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_Bounds(t *testing.T) {
	tests := []struct {
		name string
		pct  int
		want string
	}{
		{"zero", 0, "  0%"},
		{"half", 50, " 50%"},
		{"full", 100, "100%"},
		{"negative clamps", -10, "  0%"},
		{"overflow clamps", 150, "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderProgress(tt.pct, 10)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRenderProgress_BarFill(t *testing.T) {
	out := RenderProgress(100, 8)
	assert.Equal(t, 8, strings.Count(out, filledBlock))
	assert.Equal(t, 0, strings.Count(out, emptyBlock))

	out = RenderProgress(0, 8)
	assert.Equal(t, 0, strings.Count(out, filledBlock))
	assert.Equal(t, 8, strings.Count(out, emptyBlock))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAME"},
		[][]string{{"a1", "Design"}, {"b2", "Build"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[2], "Design")
	assert.Contains(t, lines[3], "Build")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
