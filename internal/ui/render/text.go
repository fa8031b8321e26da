package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ellipsis marks truncated cell content; three plain characters so the
// marker itself never breaks column math.
const ellipsis = "..."

// DisplayWidth measures rendered columns, counting zero-width runes as
// zero and wide runes as two.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w < 0 {
			w = 0
		}
		width += w
	}
	return width
}

// padToWidth fits text into exactly width columns: longer content is
// cut to width-3 columns plus the ellipsis, shorter content is padded
// with spaces on the right.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	w := DisplayWidth(text)
	if w == width {
		return text
	}
	if w < width {
		return text + strings.Repeat(" ", width-w)
	}

	if width <= len(ellipsis) {
		return clipToWidth(text, width)
	}
	clipped := clipToWidth(text, width-len(ellipsis))
	return clipped + ellipsis + strings.Repeat(" ", width-DisplayWidth(clipped)-len(ellipsis))
}

// centerToWidth centers text in width columns, truncating first if it
// does not fit.
func centerToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := DisplayWidth(text)
	if w > width {
		return padToWidth(text, width)
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// clipToWidth cuts text at a rune boundary so it occupies at most
// width columns. A trailing wide rune that would straddle the limit is
// dropped and replaced with a space to keep the width exact.
func clipToWidth(text string, width int) string {
	var builder strings.Builder
	current := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w < 0 {
			w = 0
		}
		if current+w > width {
			break
		}
		builder.WriteRune(ru)
		current += w
	}
	for current < width {
		builder.WriteByte(' ')
		current++
	}
	return builder.String()
}

// StripStyles removes ANSI SGR sequences so tests can measure the
// rendered width of a styled line.
func StripStyles(line string) string {
	var builder strings.Builder
	for i := 0; i < len(line); {
		if line[i] == 0x1b && i+1 < len(line) && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				i = j + 1
				continue
			}
		}
		builder.WriteByte(line[i])
		i++
	}
	return builder.String()
}
