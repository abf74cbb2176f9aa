package tw

import "github.com/olekukonko/papergrid/pkg/twwidth"

// Border holds the up to eight border pieces pinned to a single cell
// position: the four edges and the four corners. A zero Symbol (IsZero) on
// any field means "inherit/transparent" at that position.
type Border struct {
	Top    twwidth.Symbol
	Bottom twwidth.Symbol
	Left   twwidth.Symbol
	Right  twwidth.Symbol

	TopLeft     twwidth.Symbol
	TopRight    twwidth.Symbol
	BottomLeft  twwidth.Symbol
	BottomRight twwidth.Symbol
}

// NewSymbol wraps a single rune as a border piece; it is shorthand for
// twwidth.NewSymbol.
func NewSymbol(r rune) twwidth.Symbol { return twwidth.NewSymbol(r) }

// NewBorder builds a Border with every side and corner set to the given
// symbols.
func NewBorder(top, bottom, left, right, topLeft, topRight, bottomLeft, bottomRight twwidth.Symbol) Border {
	return Border{
		Top: top, Bottom: bottom, Left: left, Right: right,
		TopLeft: topLeft, TopRight: topRight, BottomLeft: bottomLeft, BottomRight: bottomRight,
	}
}

// FilledBorder builds a Border with every side and corner set to the same
// symbol.
func FilledBorder(c twwidth.Symbol) Border {
	return NewBorder(c, c, c, c, c, c, c, c)
}

// WithTop returns a copy of b with the top edge set.
func (b Border) WithTop(c twwidth.Symbol) Border { b.Top = c; return b }

// WithBottom returns a copy of b with the bottom edge set.
func (b Border) WithBottom(c twwidth.Symbol) Border { b.Bottom = c; return b }

// WithLeft returns a copy of b with the left edge set.
func (b Border) WithLeft(c twwidth.Symbol) Border { b.Left = c; return b }

// WithRight returns a copy of b with the right edge set.
func (b Border) WithRight(c twwidth.Symbol) Border { b.Right = c; return b }

// WithTopLeft returns a copy of b with the top-left corner set.
func (b Border) WithTopLeft(c twwidth.Symbol) Border { b.TopLeft = c; return b }

// WithTopRight returns a copy of b with the top-right corner set.
func (b Border) WithTopRight(c twwidth.Symbol) Border { b.TopRight = c; return b }

// WithBottomLeft returns a copy of b with the bottom-left corner set.
func (b Border) WithBottomLeft(c twwidth.Symbol) Border { b.BottomLeft = c; return b }

// WithBottomRight returns a copy of b with the bottom-right corner set.
func (b Border) WithBottomRight(c twwidth.Symbol) Border { b.BottomRight = c; return b }

// IsZero reports whether every field of b is the zero Symbol.
func (b Border) IsZero() bool {
	return b.Top.IsZero() && b.Bottom.IsZero() && b.Left.IsZero() && b.Right.IsZero() &&
		b.TopLeft.IsZero() && b.TopRight.IsZero() && b.BottomLeft.IsZero() && b.BottomRight.IsZero()
}

// Borders is the base theme: the full set of edges, outer corners, and
// interior junctions applied before any override layer.
type Borders struct {
	Top             twwidth.Symbol
	TopLeft         twwidth.Symbol
	TopRight        twwidth.Symbol
	TopIntersection twwidth.Symbol

	Bottom             twwidth.Symbol
	BottomLeft         twwidth.Symbol
	BottomRight        twwidth.Symbol
	BottomIntersection twwidth.Symbol

	Horizontal      twwidth.Symbol
	HorizontalLeft  twwidth.Symbol
	HorizontalRight twwidth.Symbol

	VerticalLeft         twwidth.Symbol
	VerticalRight        twwidth.Symbol
	VerticalIntersection twwidth.Symbol

	Intersection twwidth.Symbol
}

// DefaultBorders is the `+`/`-`/`|` theme used when a Grid is created.
func DefaultBorders() Borders {
	dash := twwidth.NewSymbol('-')
	plus := twwidth.NewSymbol('+')
	pipe := twwidth.NewSymbol('|')
	return Borders{
		Top: dash, TopLeft: plus, TopRight: plus, TopIntersection: plus,
		Bottom: dash, BottomLeft: plus, BottomRight: plus, BottomIntersection: plus,
		Horizontal: dash, HorizontalLeft: plus, HorizontalRight: plus,
		VerticalLeft: pipe, VerticalRight: pipe, VerticalIntersection: pipe,
		Intersection: plus,
	}
}

// Line overrides a single horizontal split line: the line itself, the
// interior intersections along it, and its left/right terminators.
type Line struct {
	Horizontal   twwidth.Symbol
	Intersection twwidth.Symbol
	Left         twwidth.Symbol
	Right        twwidth.Symbol
}

// IsZero reports whether the line carries no overrides at all.
func (l Line) IsZero() bool {
	return l.Horizontal.IsZero() && l.Intersection.IsZero() && l.Left.IsZero() && l.Right.IsZero()
}
