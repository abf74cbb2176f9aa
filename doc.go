// Package papergrid lays out and renders a two-dimensional grid of text
// cells into a single monospace string suitable for terminal display.
//
// Given a fixed (rows, columns) grid of textual content plus per-cell
// formatting (span, padding, alignment, tab width) it resolves column
// widths and row heights, composites each cell line by line, and threads
// the result through a layered border theme.
//
//	g := papergrid.New(2, 2)
//	g.Set(tw.Cell(0, 0), tw.NewSettings().WithText("0-0"))
//	g.Set(tw.Cell(0, 1), tw.NewSettings().WithText("0-1"))
//	g.Set(tw.Cell(1, 0), tw.NewSettings().WithText("1-0"))
//	g.Set(tw.Cell(1, 1), tw.NewSettings().WithText("1-1"))
//	var buf bytes.Buffer
//	_ = g.Render(&buf)
package papergrid
