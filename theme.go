package papergrid

import (
	"github.com/olekukonko/papergrid/pkg/twwidth"
	"github.com/olekukonko/papergrid/tw"
)

// position addresses a border/corner/intersection coordinate in the
// theme's sparse override maps. It is distinct from a cell (row, col): for
// verticals and intersections, col ranges over [0, columns] inclusive (one
// past the last cell), same for horizontals over rows.
type position struct {
	row, col int
}

// Theme is the layered border configuration: a base Borders set, a sparse
// map of per-position overrides, and a sparse map of per-row split-line
// overrides.
type Theme struct {
	borders       tw.Borders
	overrideVert  map[position]twwidth.Symbol
	overrideHoriz map[position]twwidth.Symbol
	overrideInter map[position]twwidth.Symbol
	overrideLines map[int]tw.Line
}

func newTheme() *Theme {
	return &Theme{
		borders:       tw.DefaultBorders(),
		overrideVert:  map[position]twwidth.Symbol{},
		overrideHoriz: map[position]twwidth.Symbol{},
		overrideInter: map[position]twwidth.Symbol{},
		overrideLines: map[int]tw.Line{},
	}
}

// overrideBorder records a per-cell Border override, splitting its eight
// pieces into the vertical/horizontal/intersection maps the renderer
// actually consults.
func (t *Theme) overrideBorder(pos position, border tw.Border) {
	if !border.Top.IsZero() {
		t.overrideHoriz[pos] = border.Top
	}
	if !border.Bottom.IsZero() {
		t.overrideHoriz[position{pos.row + 1, pos.col}] = border.Bottom
	}
	if !border.Left.IsZero() {
		t.overrideVert[pos] = border.Left
	}
	if !border.Right.IsZero() {
		t.overrideVert[position{pos.row, pos.col + 1}] = border.Right
	}
	if !border.TopLeft.IsZero() {
		t.overrideInter[pos] = border.TopLeft
	}
	if !border.BottomLeft.IsZero() {
		t.overrideInter[position{pos.row + 1, pos.col}] = border.BottomLeft
	}
	if !border.TopRight.IsZero() {
		t.overrideInter[position{pos.row, pos.col + 1}] = border.TopRight
	}
	if !border.BottomRight.IsZero() {
		t.overrideInter[position{pos.row + 1, pos.col + 1}] = border.BottomRight
	}
}

func (t *Theme) overrideLine(row int, line tw.Line) {
	t.overrideLines[row] = line
}

// getBorder resolves the full Border for the cell at pos by layering the
// base theme, row-split-line overrides, and per-position overrides, in
// that order.
func (t *Theme) getBorder(pos position, countRows, countCols int) tw.Border {
	isFirstRow := pos.row == 0
	isLastRow := pos.row+1 == countRows
	isFirstCol := pos.col == 0
	isLastCol := pos.col+1 == countCols

	top := t.borders.Horizontal
	if isFirstRow {
		top = t.borders.Top
	}
	bottom := t.borders.Horizontal
	if isLastRow {
		bottom = t.borders.Bottom
	}
	left := t.borders.VerticalIntersection
	if isFirstCol {
		left = t.borders.VerticalLeft
	}
	right := t.borders.VerticalIntersection
	if isLastCol {
		right = t.borders.VerticalRight
	}

	topLeft := t.borders.Intersection
	switch {
	case isFirstRow && isFirstCol:
		topLeft = t.borders.TopLeft
	case isFirstCol:
		topLeft = t.borders.HorizontalLeft
	}
	bottomLeft := t.borders.Intersection
	switch {
	case isLastRow && isFirstCol:
		bottomLeft = t.borders.BottomLeft
	case isFirstCol:
		bottomLeft = t.borders.HorizontalLeft
	}
	topRight := t.borders.Intersection
	switch {
	case isFirstRow && isLastCol:
		topRight = t.borders.TopRight
	case isLastCol:
		topRight = t.borders.HorizontalRight
	}
	bottomRight := t.borders.Intersection
	switch {
	case isLastRow && isLastCol:
		bottomRight = t.borders.BottomRight
	case isLastCol:
		bottomRight = t.borders.HorizontalRight
	}

	border := tw.Border{
		Top: top, Bottom: bottom, Left: left, Right: right,
		TopLeft: topLeft, TopRight: topRight, BottomLeft: bottomLeft, BottomRight: bottomRight,
	}

	if line, ok := t.overrideLines[pos.row]; ok {
		border.Top = firstNonZero(line.Horizontal, border.Top)
		if isFirstCol {
			border.TopLeft = firstNonZero(line.Left, border.TopLeft)
		} else {
			border.TopLeft = firstNonZero(line.Intersection, border.TopLeft)
		}
		if isLastCol {
			border.TopRight = firstNonZero(line.Right, border.TopRight)
		} else {
			border.TopRight = firstNonZero(line.Intersection, border.TopRight)
		}
	}

	if line, ok := t.overrideLines[pos.row+1]; ok {
		border.Bottom = firstNonZero(line.Horizontal, border.Bottom)
		if isFirstCol {
			border.BottomLeft = firstNonZero(line.Left, border.BottomLeft)
		} else {
			border.BottomLeft = firstNonZero(line.Intersection, border.BottomLeft)
		}
		if isLastCol {
			border.BottomRight = firstNonZero(line.Right, border.BottomRight)
		} else {
			border.BottomRight = firstNonZero(line.Intersection, border.BottomRight)
		}
	}

	if override, ok := t.overridePiecesAt(pos); ok {
		border.Top = firstNonZero(override.Top, border.Top)
		border.Bottom = firstNonZero(override.Bottom, border.Bottom)
		border.Left = firstNonZero(override.Left, border.Left)
		border.Right = firstNonZero(override.Right, border.Right)
		border.TopLeft = firstNonZero(override.TopLeft, border.TopLeft)
		border.BottomLeft = firstNonZero(override.BottomLeft, border.BottomLeft)
		border.TopRight = firstNonZero(override.TopRight, border.TopRight)
		border.BottomRight = firstNonZero(override.BottomRight, border.BottomRight)
	}

	return border
}

// overridePiecesAt gathers whatever per-position overrides touch the cell
// at pos, reassembled into a Border. Reports false if none do.
func (t *Theme) overridePiecesAt(pos position) (tw.Border, bool) {
	top, hasTop := t.overrideHoriz[pos]
	bottom, hasBottom := t.overrideHoriz[position{pos.row + 1, pos.col}]
	left, hasLeft := t.overrideVert[pos]
	right, hasRight := t.overrideVert[position{pos.row, pos.col + 1}]
	topLeft, hasTopLeft := t.overrideInter[pos]
	bottomLeft, hasBottomLeft := t.overrideInter[position{pos.row + 1, pos.col}]
	topRight, hasTopRight := t.overrideInter[position{pos.row, pos.col + 1}]
	bottomRight, hasBottomRight := t.overrideInter[position{pos.row + 1, pos.col + 1}]

	if !hasTop && !hasBottom && !hasLeft && !hasRight && !hasTopLeft && !hasBottomLeft && !hasTopRight && !hasBottomRight {
		return tw.Border{}, false
	}

	return tw.Border{
		Top: top, Bottom: bottom, Left: left, Right: right,
		TopLeft: topLeft, TopRight: topRight, BottomLeft: bottomLeft, BottomRight: bottomRight,
	}, true
}

// getVertical resolves the vertical border symbol at position pos, which
// may fall on the left edge, right edge, or an interior junction.
func (t *Theme) getVertical(pos position, countCols int) (twwidth.Symbol, bool) {
	if c, ok := t.overrideVert[pos]; ok {
		return c, true
	}
	switch {
	case pos.col == countCols:
		return t.borders.VerticalRight, !t.borders.VerticalRight.IsZero()
	case pos.col == 0:
		return t.borders.VerticalLeft, !t.borders.VerticalLeft.IsZero()
	default:
		return t.borders.VerticalIntersection, !t.borders.VerticalIntersection.IsZero()
	}
}

// getHorizontal resolves the horizontal border symbol at position pos.
func (t *Theme) getHorizontal(pos position, countRows int) (twwidth.Symbol, bool) {
	if c, ok := t.overrideHoriz[pos]; ok {
		return c, true
	}
	if line, ok := t.overrideLines[pos.row]; ok && !line.Horizontal.IsZero() {
		return line.Horizontal, true
	}
	switch {
	case pos.row == 0:
		return t.borders.Top, !t.borders.Top.IsZero()
	case pos.row == countRows:
		return t.borders.Bottom, !t.borders.Bottom.IsZero()
	default:
		return t.borders.Horizontal, !t.borders.Horizontal.IsZero()
	}
}

// getIntersection resolves the corner/junction symbol at position pos.
func (t *Theme) getIntersection(pos position, countRows, countCols int) (twwidth.Symbol, bool) {
	useTop := pos.row == 0
	useBottom := pos.row == countRows
	useLeft := pos.col == 0
	useRight := pos.col == countCols

	if c, ok := t.overrideInter[pos]; ok {
		return c, true
	}

	if line, ok := t.overrideLines[pos.row]; ok {
		if useLeft && !line.Left.IsZero() {
			return line.Left, true
		}
		if useRight && !line.Right.IsZero() {
			return line.Right, true
		}
		if !useLeft && !useRight && !line.Intersection.IsZero() {
			return line.Intersection, true
		}
	}

	switch {
	case useTop && useLeft:
		return t.borders.TopLeft, !t.borders.TopLeft.IsZero()
	case useTop && useRight:
		return t.borders.TopRight, !t.borders.TopRight.IsZero()
	case useBottom && useLeft:
		return t.borders.BottomLeft, !t.borders.BottomLeft.IsZero()
	case useBottom && useRight:
		return t.borders.BottomRight, !t.borders.BottomRight.IsZero()
	case useTop:
		return t.borders.TopIntersection, !t.borders.TopIntersection.IsZero()
	case useBottom:
		return t.borders.BottomIntersection, !t.borders.BottomIntersection.IsZero()
	case useLeft:
		return t.borders.HorizontalLeft, !t.borders.HorizontalLeft.IsZero()
	case useRight:
		return t.borders.HorizontalRight, !t.borders.HorizontalRight.IsZero()
	default:
		return t.borders.Intersection, !t.borders.Intersection.IsZero()
	}
}

func firstNonZero(a, b twwidth.Symbol) twwidth.Symbol {
	if !a.IsZero() {
		return a
	}
	return b
}

// spaceSymbol is the fallback glyph substituted for a missing border edge
// whenever a perpendicular neighbor forces the position to exist.
func spaceSymbol() twwidth.Symbol {
	return twwidth.NewSymbol(' ')
}

// hasVertical reports whether any resolved vertical piece exists along
// column col across every row.
func (g *Grid) hasVertical(col int) bool {
	for r := 0; r < g.rows; r++ {
		if _, ok := g.theme.getVertical(position{r, col}, g.cols); ok {
			return true
		}
	}
	return false
}

// hasHorizontal reports whether any resolved horizontal piece exists along
// row row across every column.
func (g *Grid) hasHorizontal(row int) bool {
	for c := 0; c < g.cols; c++ {
		if _, ok := g.theme.getHorizontal(position{row, c}, g.rows); ok {
			return true
		}
	}
	return false
}

// effectiveBorder resolves the theme border at (row, col) and fills in
// space fallbacks wherever an edge is absent but the perpendicular
// neighbor forces it to exist, so columns stay aligned.
func (g *Grid) effectiveBorder(row, col int) tw.Border {
	border := g.theme.getBorder(position{row, col}, g.rows, g.cols)

	space := spaceSymbol()

	topSet := !border.Top.IsZero()
	bottomSet := !border.Bottom.IsZero()
	leftSet := !border.Left.IsZero()
	rightSet := !border.Right.IsZero()

	if border.Top.IsZero() && g.hasHorizontal(row) {
		border.Top = space
		topSet = true
	}
	if border.Bottom.IsZero() && g.hasHorizontal(row+1) {
		border.Bottom = space
		bottomSet = true
	}
	if border.Left.IsZero() && g.hasVertical(col) {
		border.Left = space
		leftSet = true
	}
	if border.Right.IsZero() && g.hasVertical(col+1) {
		border.Right = space
		rightSet = true
	}

	if border.TopLeft.IsZero() && topSet && leftSet {
		border.TopLeft = space
	}
	if border.BottomLeft.IsZero() && bottomSet && leftSet {
		border.BottomLeft = space
	}
	if border.TopRight.IsZero() && topSet && rightSet {
		border.TopRight = space
	}
	if border.BottomRight.IsZero() && bottomSet && rightSet {
		border.BottomRight = space
	}

	return border
}
