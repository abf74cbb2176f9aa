package papergrid

import "github.com/olekukonko/papergrid/tw"

// rowsHeight computes the height of every row: the maximum cellHeight
// across its cells.
func (g *Grid) rowsHeight(cells [][][]string, styles [][]tw.Style) []int {
	heights := make([]int, g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if h := cellHeight(cells[r][c], styles[r][c]); h > heights[r] {
				heights[r] = h
			}
		}
	}
	return heights
}

// cellHeight is the line count a cell occupies, forced to at least 1 when
// vertical padding is present even for an empty cell, plus its vertical
// padding.
func cellHeight(lines []string, style tw.Style) int {
	hasPadding := style.Padding.Top.Size > 0 || style.Padding.Bottom.Size > 0
	content := len(lines)
	if content == 0 && hasPadding {
		content = 1
	}
	return content + style.Padding.Top.Size + style.Padding.Bottom.Size
}
