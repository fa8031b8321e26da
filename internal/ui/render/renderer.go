package render

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/pick/internal/menu"
)

const (
	// minFrameWidth keeps the frame legible on narrow terminals.
	minFrameWidth = 80
	// frameMargin leaves breathing room between frame and screen edge.
	frameMargin = 4
	// markerWidth is the selection marker slot inside the name column.
	markerWidth = 2
	// separatorOverhead is the fixed glyph count per item row:
	// "│ " + " │ " + " │".
	separatorOverhead = 7
)

// FrameWidth returns the rendered width of every frame line for a
// terminal of the given column count.
func FrameWidth(cols int) int {
	available := cols - frameMargin
	if available < minFrameWidth {
		available = minFrameWidth
	}
	return available
}

// Render builds the full frame for the current state: border, header,
// visible item rows, scroll indicator when the list overflows, and the
// control-hint footer. It is a pure function of its inputs, and every
// line has the same rendered width (styling excluded).
func Render(state *menu.State, layout menu.Layout, theme Theme, cols int) []string {
	available := FrameWidth(cols)
	inner := available - 2

	bar := strings.Repeat("─", inner)
	top := theme.Border + "╭" + bar + "╮" + theme.Reset
	mid := theme.Border + "├" + bar + "┤" + theme.Reset
	bottom := theme.Border + "╰" + bar + "╯" + theme.Reset
	edge := theme.Border + "│" + theme.Reset

	lines := []string{
		top,
		edge + theme.Title + centerToWidth(layout.Title, inner) + theme.Reset + edge,
		mid,
	}

	if len(state.Items) == 0 {
		lines = append(lines,
			edge+theme.Empty+centerToWidth(layout.EmptyMessage, inner)+theme.Reset+edge,
			bottom)
		return lines
	}

	nameWidth := menu.LongestName(state.Items, DisplayWidth) + markerWidth
	if limit := available / layout.NameDivisor; nameWidth > limit {
		nameWidth = limit
	}
	detailWidth := available - nameWidth - separatorOverhead

	start, end := state.VisibleRange()
	for i := start; i < end; i++ {
		item := state.Items[i]

		marker := "  "
		nameStyle, detailStyle := theme.Name, theme.Detail
		if i == state.SelectedIndex {
			marker = "➤ "
			nameStyle, detailStyle = theme.Selected, theme.Selected
		}
		nameCell := marker + padToWidth(item.Name, nameWidth-markerWidth)
		detailCell := padToWidth(item.Detail, detailWidth)

		lines = append(lines, edge+" "+
			nameStyle+nameCell+theme.Reset+" "+edge+" "+
			detailStyle+detailCell+theme.Reset+" "+edge)
	}

	if state.Overflows() {
		info := fmt.Sprintf("Showing %d-%d of %d %s", start+1, end, len(state.Items), layout.Noun)
		lines = append(lines, mid,
			edge+" "+theme.Info+padToWidth(info, inner-2)+theme.Reset+" "+edge)
	}

	controls := fmt.Sprintf("↑↓: Navigate  Enter: %s  q/Esc/Ctrl+C: Quit  j/k: Vim keys", layout.SelectVerb)
	lines = append(lines, mid,
		edge+" "+theme.Hint+padToWidth(controls, inner-2)+theme.Reset+" "+edge,
		bottom)
	return lines
}
