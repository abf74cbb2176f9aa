package papergrid

import (
	"github.com/olekukonko/errors"
	"github.com/olekukonko/papergrid/tw"
)

// Extract builds a fresh Grid covering the [rowStart,rowEnd) x
// [colStart,colEnd) subrange: it copies the theme's base borders and, for
// each covered position, re-materializes the visible settings (text,
// alignment, span, padding, border) by reading via GetSettings and writing
// via Set. The source's per-position and split-line override maps are not
// copied, so borders that pointed outside the extracted region are dropped;
// OverrideSplitLine text is not carried over either.
func (g *Grid) Extract(rowStart, rowEnd, colStart, colEnd int) *Grid {
	if rowStart < 0 || rowEnd > g.rows || rowStart > rowEnd ||
		colStart < 0 || colEnd > g.cols || colStart > colEnd {
		panic(errors.Newf("papergrid: extract range rows[%d:%d] cols[%d:%d] out of bounds for %dx%d grid",
			rowStart, rowEnd, colStart, colEnd, g.rows, g.cols))
	}

	newRows := rowEnd - rowStart
	newCols := colEnd - colStart

	out := New(newRows, newCols)
	out.theme.borders = g.theme.borders

	for nr, r := 0, rowStart; r < rowEnd; nr, r = nr+1, r+1 {
		for nc, c := 0, colStart; c < colEnd; nc, c = nc+1, c+1 {
			settings := g.GetSettings(r, c)
			out.Set(tw.Cell(nr, nc), settings)
		}
	}

	return out
}
