// Package tw defines the addressing, style, and border types shared by the
// grid layout engine: Entity, Style, Settings, Border, Borders, Line, Margin,
// Padding, and Indent.
package tw

import "github.com/olekukonko/errors"

// Kind distinguishes the four ways a Style or Border can be addressed.
type Kind int

const (
	// KindGlobal addresses every cell in the grid.
	KindGlobal Kind = iota
	// KindColumn addresses every cell in a single column.
	KindColumn
	// KindRow addresses every cell in a single row.
	KindRow
	// KindCell addresses exactly one cell.
	KindCell
)

// Entity is an addressing scope: Global, a whole Column, a whole Row, or a
// single Cell. Use the constructors below rather than the zero value
// directly, since Cell/Row/Column carry coordinates.
type Entity struct {
	kind Kind
	row  int
	col  int
}

// Global addresses every cell in the grid.
func Global() Entity { return Entity{kind: KindGlobal} }

// Column addresses every cell in column c.
func Column(c int) Entity { return Entity{kind: KindColumn, col: c} }

// Row addresses every cell in row r.
func Row(r int) Entity { return Entity{kind: KindRow, row: r} }

// Cell addresses the single cell at (r, c).
func Cell(r, c int) Entity { return Entity{kind: KindCell, row: r, col: c} }

// Kind reports which addressing scope this entity uses.
func (e Entity) Kind() Kind { return e.kind }

// Row returns the addressed row. Only meaningful for KindRow and KindCell.
func (e Entity) Row() int { return e.row }

// Col returns the addressed column. Only meaningful for KindColumn and KindCell.
func (e Entity) Col() int { return e.col }

// Validate reports whether the entity carries a recognized kind.
func (e Entity) Validate() error {
	switch e.kind {
	case KindGlobal, KindColumn, KindRow, KindCell:
		return nil
	}
	return errors.Newf("tw: invalid entity kind %d", e.kind)
}
