package papergrid

import (
	"io"
	"strings"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/papergrid/pkg/twwidth"
	"github.com/olekukonko/papergrid/tw"
)

// Render writes the full table to w, ending each emitted line with a
// single '\n'. Empty grids (0 rows or 0 columns) render nothing. If w
// reports a write failure the render aborts and that failure is returned.
func (g *Grid) Render(w io.Writer) error {
	if g.rows == 0 || g.cols == 0 {
		return nil
	}

	cells, styles := g.layoutInputs()
	heights := g.rowsHeight(cells, styles)
	widths := g.columnsWidth(cells, styles)
	normWidths := normalizedWidth(widths, styles, g.rows, g.cols)

	tableWidth := g.rowWidthGrid(widths, 0)

	sw := &stickyWriter{w: w}

	g.printMarginTop(sw, tableWidth)

	for row := 0; row < g.rows; row++ {
		g.printSplitLine(sw, normWidths, tableWidth, row)

		height := heights[row]
		for i := 0; i < height; i++ {
			g.printMarginLeft(sw)

			for col := 0; col < g.cols; col++ {
				width := widths[row][col]
				border := g.effectiveBorder(row, col)

				if isCellVisible(styles[row], col) {
					sw.writeSymbol(border.Left)
					sw.writeString(composeCellLine(i, cells[row][col], styles[row][col], width, height))
				}

				if col+1 == g.cols {
					sw.writeSymbol(border.Right)
				}
			}

			g.printMarginRight(sw)
			sw.writeByte('\n')
		}

		if row+1 == g.rows {
			g.printSplitLine(sw, normWidths, tableWidth, row+1)
		}
	}

	g.printMarginBottom(sw, tableWidth)

	return sw.err
}

// String renders the grid and returns it as a string, panicking only if
// the in-memory writer itself fails, which never happens.
func (g *Grid) String() string {
	var b strings.Builder
	if err := g.Render(&b); err != nil {
		panic(errors.Newf("papergrid: unexpected render failure on strings.Builder: %v", err))
	}
	return b.String()
}

// TotalWidth returns the full rendered width of the table, including
// borders and margins.
func (g *Grid) TotalWidth() int {
	if g.rows == 0 || g.cols == 0 {
		return 0
	}
	cells, styles := g.layoutInputs()
	widths := g.columnsWidth(cells, styles)
	return g.totalWidth(widths, styles)
}

// BuildWidths exposes the computed per-cell width matrix and the
// normalized style snapshot used to produce it, mainly for diagnostics.
func (g *Grid) BuildWidths() ([][]int, [][]tw.Style) {
	cells, styles := g.layoutInputs()
	widths := g.columnsWidth(cells, styles)
	return widths, styles
}

func (g *Grid) totalWidth(widths [][]int, styles [][]tw.Style) int {
	content := 0
	if len(widths) > 0 {
		for _, w := range widths[0] {
			content += w
		}
	}

	borders := 0
	if g.cols > 0 {
		for col := 0; col < g.cols; col++ {
			if isCellVisible(styles[0], col) && g.hasVertical(col) {
				borders++
			}
		}
		if g.hasVertical(g.cols) {
			borders++
		}
	}

	return content + borders + g.margin.Left.Size + g.margin.Right.Size
}

func (g *Grid) rowWidthGrid(widths [][]int, row int) int {
	rowWidth := 0
	if row < len(widths) {
		for _, w := range widths[row] {
			rowWidth += w
		}
	}

	borders := 0
	for col := 0; col < g.cols; col++ {
		if g.hasVertical(col) {
			borders++
		}
	}
	if g.hasVertical(g.cols) {
		borders++
	}

	return rowWidth + borders
}

func (g *Grid) printMarginTop(sw *stickyWriter, tableWidth int) {
	size := tableWidth + g.margin.Left.Size + g.margin.Right.Size
	for i := 0; i < g.margin.Top.Size; i++ {
		sw.writeString(strings.Repeat(string(g.margin.Top.Fill), size))
		sw.writeByte('\n')
	}
}

func (g *Grid) printMarginBottom(sw *stickyWriter, tableWidth int) {
	size := tableWidth + g.margin.Left.Size + g.margin.Right.Size
	for i := 0; i < g.margin.Bottom.Size; i++ {
		sw.writeString(strings.Repeat(string(g.margin.Bottom.Fill), size))
		sw.writeByte('\n')
	}
}

func (g *Grid) printMarginLeft(sw *stickyWriter) {
	sw.writeString(strings.Repeat(string(g.margin.Left.Fill), g.margin.Left.Size))
}

func (g *Grid) printMarginRight(sw *stickyWriter) {
	sw.writeString(strings.Repeat(string(g.margin.Right.Fill), g.margin.Right.Size))
}

// printSplitLine draws the horizontal split line above row (or below the
// last row when row == g.rows), consuming any override text left to right
// and suppressing the border/corner/main glyphs it displaces.
func (g *Grid) printSplitLine(sw *stickyWriter, widths []int, maxWidth, row int) {
	if !g.hasHorizontal(row) {
		return
	}

	g.debugf("printSplitLine: row=%d width=%d override=%v", row, maxWidth, g.overrides[row] != "")

	g.printMarginLeft(sw)

	charSkip := 0
	if text, ok := g.overrides[row]; ok {
		truncated := twwidth.Truncate(text, maxWidth)
		if i := strings.IndexByte(truncated, '\n'); i >= 0 {
			truncated = truncated[:i]
		}
		charSkip = twwidth.StringWidth(truncated)
		sw.writeString(truncated)
	}

	for col, width := range widths {
		if col == 0 {
			left, ok := g.theme.getIntersection(position{row, col}, g.rows, g.cols)
			if !ok && g.hasVertical(col) {
				left = spaceSymbol()
				ok = true
			}
			if ok {
				if charSkip == 0 {
					sw.writeSymbol(left)
				} else {
					charSkip--
				}
			}
		}

		main, ok := g.theme.getHorizontal(position{row, col}, g.rows)
		if !ok {
			main = spaceSymbol()
		}
		w := width
		if charSkip > 0 {
			sub := charSkip
			if w < sub {
				sub = w
			}
			w -= sub
			charSkip -= sub
		}
		for i := 0; i < w; i++ {
			sw.writeSymbol(main)
		}

		right, ok := g.theme.getIntersection(position{row, col + 1}, g.rows, g.cols)
		if !ok && g.hasVertical(col+1) {
			right = spaceSymbol()
			ok = true
		}
		if ok {
			if charSkip == 0 {
				sw.writeSymbol(right)
			} else {
				charSkip--
			}
		}
	}

	g.printMarginRight(sw)
	sw.writeByte('\n')
}

// stickyWriter wraps an io.Writer and latches the first write error,
// turning every subsequent write into a no-op so the renderer can keep
// calling write methods unconditionally and check err once at the end.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) writeString(str string) {
	if s.err != nil || str == "" {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *stickyWriter) writeByte(b byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write([]byte{b})
}

func (s *stickyWriter) writeSymbol(sym twwidth.Symbol) {
	if sym.IsZero() {
		return
	}
	s.writeString(sym.String())
}
