package papergrid

import "github.com/olekukonko/papergrid/tw"

// markInvisibleCells marks styles[c].Span = 0 wherever an earlier cell's
// span already extends past c, for every row. Run once right after
// resolving styles, before the first-column/inner-zero-run fixups below.
func markInvisibleCells(styles [][]tw.Style) {
	for _, row := range styles {
		for c := range row {
			if !isCellVisible(row, c) {
				row[c].Span = 0
			}
		}
	}
}

// normalizeSpans applies the remaining fixups, the leading zero-span swap
// and inner zero-run extension, to every row, in lockstep with the
// matching cell-content rows so a swapped style stays paired with its text.
func normalizeSpans(styles [][]tw.Style, cells [][][]string) {
	for r := range styles {
		fixFirstColumnSpan(styles[r], cells[r])
		fixInnerZeroRuns(styles[r])
	}
}

// fixFirstColumnSpan swaps a leading zero-span cell with the first visible
// cell in the row, extending its span to still cover the original right
// edge, and swaps the paired cell content so text stays with its style.
func fixFirstColumnSpan(row []tw.Style, cells [][]string) {
	if len(row) == 0 || row[0].Span != 0 {
		return
	}
	for i := 1; i < len(row); i++ {
		if row[i].Span > 0 {
			row[i].Span += i
			row[0], row[i] = row[i], row[0]
			cells[0], cells[i] = cells[i], cells[0]
			return
		}
	}
}

// fixInnerZeroRuns extends the nearest visible cell to the left of each
// un-overridden zero-span run so it covers up to that position.
func fixInnerZeroRuns(row []tw.Style) {
	for i := range row {
		if row[i].Span > 0 {
			continue
		}
		if isCellOverridden(row[:i]) {
			continue
		}
		for p := i - 1; p >= 0; p-- {
			if row[p].Span > 0 {
				row[p].Span = i - p + 1
				break
			}
		}
	}
}

// isCellVisible reports whether column c in row is a visible (non-covered)
// cell: its own span is nonzero and no earlier cell's span overrides it.
func isCellVisible(row []tw.Style, c int) bool {
	if row[c].Span == 0 {
		return false
	}
	return !isCellOverridden(row[:c])
}

// isCellOverridden reports whether some cell within the given prefix has a
// span that extends past the end of the prefix, i.e. covers column len(row).
func isCellOverridden(row []tw.Style) bool {
	for i, s := range row {
		if s.Span > len(row)-i {
			return true
		}
	}
	return false
}

// isCellInScope reports whether the cell at col, given its span, ends at
// or before endCol.
func isCellInScope(row []tw.Style, col, endCol int) bool {
	return col+row[col].Span <= endCol
}
