package tuiutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Truncate fits s into width terminal cells, marking cut text with an
// ellipsis. Newlines are flattened so a cell stays one line high.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func Clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
