package papergrid

import (
	"strings"

	"github.com/olekukonko/papergrid/pkg/twwidth"
	"github.com/olekukonko/papergrid/tw"
)

func stringDisplayWidth(s string) int { return twwidth.StringWidth(s) }

// collectCells expands tabs and splits every cell's text into lines,
// using each cell's resolved tab width.
func (g *Grid) collectCells() [][][]string {
	rows := make([][][]string, g.rows)
	for r := 0; r < g.rows; r++ {
		rows[r] = make([][]string, g.cols)
		for c := 0; c < g.cols; c++ {
			style := g.resolveStyle(tw.Cell(r, c))
			content := twwidth.ExpandTabs(g.cells[r][c], style.Formatting.TabWidth)
			if content == "" {
				rows[r][c] = nil
			} else {
				rows[r][c] = strings.Split(content, "\n")
			}
		}
	}
	return rows
}

// collectStyles snapshots the resolved style for every cell and marks
// spans covered by an earlier cell's span as invisible.
func (g *Grid) collectStyles() [][]tw.Style {
	rows := make([][]tw.Style, g.rows)
	for r := 0; r < g.rows; r++ {
		rows[r] = make([]tw.Style, g.cols)
		for c := 0; c < g.cols; c++ {
			rows[r][c] = g.resolveStyle(tw.Cell(r, c))
		}
	}
	markInvisibleCells(rows)
	return rows
}

// layoutInputs collects cell content and styles and finishes span
// normalization, ready for the width solver.
func (g *Grid) layoutInputs() ([][][]string, [][]tw.Style) {
	cells := g.collectCells()
	styles := g.collectStyles()
	normalizeSpans(styles, cells)
	return cells, styles
}
