package papergrid

import (
	"strings"

	"github.com/olekukonko/papergrid/pkg/twwidth"
	"github.com/olekukonko/papergrid/tw"
)

// composeCellLine emits one display line (index lineIndex of rowHeight) of
// one cell, given its pre-expanded content lines, style, and final
// width/height.
func composeCellLine(lineIndex int, lines []string, style tw.Style, width, height int) string {
	if style.Formatting.VerticalTrim {
		lines = skipEmptyLines(lines)
	}

	top := topIndent(lines, style, height)
	if lineIndex < top {
		return strings.Repeat(string(style.Padding.Top.Fill), width)
	}

	contentIndex := lineIndex - top
	if contentIndex >= len(lines) {
		return strings.Repeat(string(style.Padding.Bottom.Fill), width)
	}

	text := lines[contentIndex]
	switch {
	case style.Formatting.HorizontalTrim && style.Formatting.AllowLinesAlignment:
		text = strings.TrimSpace(text)
	case style.Formatting.HorizontalTrim:
		text = strings.TrimRight(text, " \t")
	}

	lineWidth := twwidth.StringWidth(text)

	var blockWidth int
	if style.Formatting.AllowLinesAlignment {
		blockWidth = lineWidth
	} else {
		for _, l := range lines {
			if style.Formatting.HorizontalTrim {
				l = strings.TrimRight(l, " \t")
			}
			if w := twwidth.StringWidth(l); w > blockWidth {
				blockWidth = w
			}
		}
	}

	return lineWithWidth(text, width, lineWidth, blockWidth, style)
}

// skipEmptyLines drops leading and trailing lines that are whitespace-only.
func skipEmptyLines(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return nil
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// topIndent is the number of lines to pad above the content before its
// first line appears, combining vertical alignment offset with top padding.
func topIndent(lines []string, style tw.Style, height int) int {
	available := height - style.Padding.Top.Size
	offset := style.AlignVert.Offset(available, len(lines))
	return offset + style.Padding.Top.Size
}

// lineWithWidth lays out one line horizontally inside width: left padding,
// aligned text, right padding.
func lineWithWidth(text string, width, lineWidth, blockWidth int, style tw.Style) string {
	left := style.Padding.Left
	right := style.Padding.Right

	var b strings.Builder
	b.WriteString(strings.Repeat(string(left.Fill), left.Size))

	inner := width - left.Size - right.Size
	l, r := alignOffsets(style.AlignHoriz, inner, lineWidth, blockWidth)
	b.WriteString(strings.Repeat(" ", l))
	b.WriteString(text)
	b.WriteString(strings.Repeat(" ", r))

	b.WriteString(strings.Repeat(string(right.Fill), right.Size))
	return b.String()
}

// alignOffsets computes the left/right space counts for text of lineWidth
// laid out within inner columns, aligned per align, with blockWidth giving
// the widest sibling line in the cell.
func alignOffsets(align tw.AlignHorizontal, inner, lineWidth, blockWidth int) (left, right int) {
	diff := inner - lineWidth
	switch align {
	case tw.AlignLeft:
		return 0, diff
	case tw.AlignRight:
		maxDiff := inner - blockWidth
		return maxDiff, diff - maxDiff
	default: // AlignCenter
		maxDiff := inner - blockWidth
		left = maxDiff / 2
		return left, diff - left
	}
}
