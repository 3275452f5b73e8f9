package nook

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

func formatCodeFrame(source string, pos Position) string {
	return formatCodeFrameSpan(source, pos, 1)
}

// formatCodeFrameSpan underlines width runes starting at pos, clipped to
// the end of the line.
func formatCodeFrameSpan(source string, pos Position, width int) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := strings.TrimRight(lines[pos.Line-1], "\r")
	lineLen := utf8.RuneCountInString(lineText)

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > lineLen+1 {
		column = lineLen + 1
	}
	if width < 1 {
		width = 1
	}
	if rest := lineLen - column + 1; width > rest && rest > 0 {
		width = rest
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s%s",
		pos.Line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
		strings.Repeat("^", width),
	)
}
