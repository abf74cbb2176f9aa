package papergrid

import "github.com/olekukonko/papergrid/tw"

// columnsWidth computes widths[r][c] for a normalized grid: intrinsic
// per-cell widths (Step 1), then adjusted in ascending span order so every
// spanning cell's range agrees across rows (Step 2-3).
func (g *Grid) columnsWidth(cells [][][]string, styles [][]tw.Style) [][]int {
	widths := make([][]int, g.rows)
	for r := range widths {
		widths[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			if isCellVisible(styles[r], c) {
				widths[r][c] = cellWidth(cells[r][c], styles[r][c])
			}
		}
	}

	spans := distinctSpans(styles)
	for _, span := range spans {
		g.adjustWidth(widths, styles, span)
	}

	return widths
}

func cellWidth(lines []string, style tw.Style) int {
	max := 0
	for _, l := range lines {
		if w := stringDisplayWidth(l); w > max {
			max = w
		}
	}
	return max + style.Padding.Left.Size + style.Padding.Right.Size
}

// distinctSpans returns the distinct nonzero span values across every
// style, in ascending order, matching the BTreeSet iteration order the
// source relies on for monotone adjustment.
func distinctSpans(styles [][]tw.Style) []int {
	seen := map[int]bool{}
	for _, row := range styles {
		for _, s := range row {
			if s.Span > 0 {
				seen[s.Span] = true
			}
		}
	}
	spans := make([]int, 0, len(seen))
	for s := range seen {
		spans = append(spans, s)
	}
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j-1] > spans[j]; j-- {
			spans[j-1], spans[j] = spans[j], spans[j-1]
		}
	}
	return spans
}

func (g *Grid) adjustWidth(widths [][]int, styles [][]tw.Style, span int) {
	var ranges [][2]int
	for col := 0; col+span <= g.cols; col++ {
		ranges = append(ranges, [2]int{col, col + span})
	}

	for _, rg := range ranges {
		g.adjustRangeWidth(widths, styles, rg[0], rg[1])
	}

	if span > 1 {
		// Adjustments at higher spans can perturb lower-span ranges; one
		// re-pass is sufficient since ascending-span processing is monotone.
		for _, rg := range ranges {
			if !g.isRangeComplete(styles, widths, rg[0], rg[1]) {
				g.adjustRangeWidth(widths, styles, rg[0], rg[1])
			}
		}
	}
}

func (g *Grid) adjustRangeWidth(widths [][]int, styles [][]tw.Style, start, end int) {
	if g.rows == 0 {
		return
	}

	maxRow, maxWidth := 0, -1
	for r := 0; r < g.rows; r++ {
		w := g.rowWidth(styles[r], widths[r], start, end)
		if w > maxWidth {
			maxRow, maxWidth = r, w
		}
	}
	if maxWidth <= 0 {
		return
	}

	g.debugf("adjustRangeWidth: cols[%d:%d] maxRow=%d maxWidth=%d", start, end, maxRow, maxWidth)

	for r := 0; r < g.rows; r++ {
		if r == maxRow || isThereOutOfScopeCell(styles[r], start, end) {
			continue
		}
		diff := maxWidth - g.rowWidth(styles[r], widths[r], start, end)
		incCellsWidth(widths[r], styles[r], start, end, diff)
	}

	if span := end - start; span > 1 {
		for r := 0; r < g.rows; r++ {
			if r == maxRow || !isThereOutOfScopeCell(styles[r], start, end) {
				continue
			}
			for col := start; col < end; col++ {
				if !isCellVisible(styles[r], col) {
					continue
				}
				for other := 0; other < g.rows; other++ {
					if other == maxRow || other == r {
						continue
					}
					if isThereOutOfScopeCell(styles[other], start, end) {
						continue
					}
					if styles[other][col].Span == styles[r][col].Span {
						widths[r][col] = widths[other][col]
						break
					}
				}
			}
		}
	}
}

func isThereOutOfScopeCell(row []tw.Style, start, end int) bool {
	if !isCellVisible(row, start) {
		return true
	}
	for col := start; col < end; col++ {
		if isCellVisible(row, col) && !isCellInScope(row, col, end) {
			return true
		}
	}
	return false
}

func (g *Grid) isRangeComplete(styles [][]tw.Style, widths [][]int, start, end int) bool {
	width := -1
	complete := true
	for r := 0; r < g.rows; r++ {
		if isThereOutOfScopeCell(styles[r], start, end) {
			continue
		}
		w := g.rowWidth(styles[r], widths[r], start, end)
		if width == -1 {
			width = w
		} else if w != width {
			complete = false
		}
	}
	return width != -1 && complete
}

func (g *Grid) rowWidth(row []tw.Style, widths []int, start, end int) int {
	var inScope []int
	for i := start; i < end; i++ {
		if isCellVisible(row, i) && isCellInScope(row, i, end) {
			inScope = append(inScope, i)
		}
	}

	width := 0
	for _, i := range inScope {
		width += widths[i]
	}

	borders := 0
	for idx, i := range inScope {
		if idx == 0 {
			continue
		}
		if g.hasVertical(i) {
			borders++
		}
	}

	return width + borders
}

func incCellsWidth(widths []int, row []tw.Style, start, end, inc int) {
	if inc <= 0 {
		return
	}
	col := start
	for i := 0; i < inc; i++ {
		visible := getClosestVisiblePos(row, col)
		widths[visible]++
		col++
		if col >= end {
			col = start
		}
	}
}

func getClosestVisiblePos(row []tw.Style, col int) int {
	for {
		if isCellVisible(row, col) {
			return col
		}
		if col == 0 {
			return 0
		}
		col--
	}
}

// normalizedWidth collapses the per-row widths matrix into a single
// per-column width slice for split-line drawing, by taking, for each span
// group, the row with the smallest span at that column and distributing
// its total width round-robin across the columns it covers.
func normalizedWidth(widths [][]int, styles [][]tw.Style, countRows, countCols int) []int {
	v := make([]int, countCols)
	skip := 0
	for col := 0; col < countCols; col++ {
		if skip > 0 {
			skip--
			continue
		}

		minRow, minSpan := -1, 0
		for r := 0; r < countRows; r++ {
			span := styles[r][col].Span
			if span == 0 {
				continue
			}
			if minRow == -1 || span < minSpan {
				minRow, minSpan = r, span
			}
		}
		if minRow == -1 {
			continue
		}

		span := minSpan
		width := widths[minRow][col] - (span - 1)
		c := col
		for width > 0 {
			v[c]++
			width--
			c++
			if c == col+span {
				c = col
			}
		}

		skip += span - 1
	}
	return v
}
