package papergrid

import (
	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/papergrid/tw"
)

// Grid is a fixed-size rectangle of text cells plus the styling needed to
// lay it out and render it. Dimensions are immutable after New; mutation
// happens only through Set and the dedicated setters below. Rendering never
// mutates the Grid.
type Grid struct {
	rows, cols int
	cells      [][]string
	styles     map[tw.Entity]tw.Style
	margin     tw.Margin
	theme      *Theme
	overrides  map[int]string
	logger     *ll.Logger
}

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithLogger attaches a logger used for optional debug tracing inside the
// width solver and renderer. A nil logger (the default) disables tracing.
func WithLogger(logger *ll.Logger) Option {
	return func(g *Grid) {
		g.logger = logger
	}
}

// WithMargin sets the initial margin, equivalent to calling Margin after
// construction.
func WithMargin(m tw.Margin) Option {
	return func(g *Grid) {
		g.margin = m
	}
}

// New creates a rows×columns grid with empty cells and a default style.
// Dimensions cannot change afterward.
func New(rows, cols int, opts ...Option) *Grid {
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
		styles: map[tw.Entity]tw.Style{
			tw.Global(): tw.DefaultStyle(),
		},
		margin:    tw.DefaultMargin(),
		theme:     newTheme(),
		overrides: map[int]string{},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// CountRows returns the number of rows in the grid.
func (g *Grid) CountRows() int { return g.rows }

// CountColumns returns the number of columns in the grid.
func (g *Grid) CountColumns() int { return g.cols }

func (g *Grid) debugf(format string, args ...any) {
	if g.logger != nil {
		g.logger.Debug(format, args...)
	}
}

// validateCell panics if (r, c) falls outside the grid. Index errors are
// programmer errors: the library never tries to enlarge the grid.
func (g *Grid) validateCell(r, c int) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(errors.Newf("papergrid: cell (%d, %d) out of range for %dx%d grid", r, c, g.rows, g.cols))
	}
}

// validateEntity panics if entity addresses a row or column outside the
// grid's bounds.
func (g *Grid) validateEntity(e tw.Entity) {
	switch e.Kind() {
	case tw.KindCell:
		g.validateCell(e.Row(), e.Col())
	case tw.KindRow:
		if e.Row() < 0 || e.Row() >= g.rows {
			panic(errors.Newf("papergrid: row %d out of range for %d rows", e.Row(), g.rows))
		}
	case tw.KindColumn:
		if e.Col() < 0 || e.Col() >= g.cols {
			panic(errors.Newf("papergrid: column %d out of range for %d columns", e.Col(), g.cols))
		}
	}
}

// SetText sets the raw text for every cell addressed by entity.
func (g *Grid) SetText(entity tw.Entity, text string) {
	g.validateEntity(entity)
	switch entity.Kind() {
	case tw.KindCell:
		g.cells[entity.Row()][entity.Col()] = text
	case tw.KindColumn:
		for r := 0; r < g.rows; r++ {
			g.cells[r][entity.Col()] = text
		}
	case tw.KindRow:
		for c := 0; c < g.cols; c++ {
			g.cells[entity.Row()][c] = text
		}
	case tw.KindGlobal:
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				g.cells[r][c] = text
			}
		}
	}
}

// Set applies a Settings bag to every cell addressed by entity: text,
// style fields (padding/span/alignment/formatting), and border, each only
// if the caller actually supplied it.
func (g *Grid) Set(entity tw.Entity, settings tw.Settings) {
	g.validateEntity(entity)

	if settings.Text != nil {
		g.SetText(entity, *settings.Text)
	}

	if settings.HasStyleFields() {
		g.removeInheritedStyles(entity)
		style := g.resolveStyle(entity)

		if settings.Padding != nil {
			style.Padding = *settings.Padding
		}
		if settings.AlignHoriz != nil {
			style.AlignHoriz = *settings.AlignHoriz
		}
		if settings.AlignVert != nil {
			style.AlignVert = *settings.AlignVert
		}
		if settings.Span != nil {
			style.Span = *settings.Span
		}
		if settings.Formatting != nil {
			style.Formatting = *settings.Formatting
		}

		g.styles[entity] = style
	}

	if settings.Border != nil {
		g.SetBorder(entity, *settings.Border)
	}
}

// resolveStyle returns the style that would be used for entity today,
// consulting the lookup chain appropriate to its kind.
func (g *Grid) resolveStyle(entity tw.Entity) tw.Style {
	for _, e := range g.chainFor(entity) {
		if s, ok := g.styles[e]; ok {
			return s.Clone()
		}
	}
	panic(errors.New("papergrid: no global style present, invariant violated"))
}

// chainFor returns the precedence chain to consult for entity: itself, then
// progressively broader scopes, ending at Global.
func (g *Grid) chainFor(entity tw.Entity) []tw.Entity {
	switch entity.Kind() {
	case tw.KindCell:
		r, c := entity.Row(), entity.Col()
		return []tw.Entity{tw.Cell(r, c), tw.Column(c), tw.Row(r), tw.Global()}
	case tw.KindColumn:
		return []tw.Entity{tw.Column(entity.Col()), tw.Global()}
	case tw.KindRow:
		return []tw.Entity{tw.Row(entity.Row()), tw.Global()}
	default:
		return []tw.Entity{tw.Global()}
	}
}

// removeInheritedStyles deletes the more-specific style entries that entity
// subsumes before a write, so the new broad setting isn't shadowed by stale
// narrower entries.
func (g *Grid) removeInheritedStyles(entity tw.Entity) {
	switch entity.Kind() {
	case tw.KindGlobal:
		for e := range g.styles {
			if e != tw.Global() {
				delete(g.styles, e)
			}
		}
	case tw.KindColumn:
		for e := range g.styles {
			if e.Kind() == tw.KindCell && e.Col() == entity.Col() {
				delete(g.styles, e)
			}
		}
	case tw.KindRow:
		for e := range g.styles {
			if e.Kind() == tw.KindCell && e.Row() == entity.Row() {
				delete(g.styles, e)
			}
		}
	case tw.KindCell:
		// no-op: a single cell subsumes nothing narrower.
	}
}

// Style returns the resolved style that applies to entity right now.
func (g *Grid) Style(entity tw.Entity) tw.Style {
	g.validateEntity(entity)
	return g.resolveStyle(entity)
}

// Margin replaces the grid's outer margin.
func (g *Grid) Margin(m tw.Margin) { g.margin = m }

// GetMargin returns the grid's current outer margin.
func (g *Grid) GetMargin() tw.Margin { return g.margin }

// ClearTheme resets the theme to its default and discards every split-line
// text override.
func (g *Grid) ClearTheme() {
	g.theme = newTheme()
	g.overrides = map[int]string{}
}

// SetBorders replaces the base theme's border set.
func (g *Grid) SetBorders(b tw.Borders) { g.theme.borders = b }

// GetBorders returns the base theme's border set.
func (g *Grid) GetBorders() tw.Borders { return g.theme.borders }

// SetBorder overrides the border at every cell position addressed by
// entity.
func (g *Grid) SetBorder(entity tw.Entity, border tw.Border) {
	g.validateEntity(entity)
	switch entity.Kind() {
	case tw.KindGlobal:
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				g.theme.overrideBorder(position{r, c}, border)
			}
		}
	case tw.KindColumn:
		for r := 0; r < g.rows; r++ {
			g.theme.overrideBorder(position{r, entity.Col()}, border)
		}
	case tw.KindRow:
		for c := 0; c < g.cols; c++ {
			g.theme.overrideBorder(position{entity.Row(), c}, border)
		}
	case tw.KindCell:
		g.theme.overrideBorder(position{entity.Row(), entity.Col()}, border)
	}
}

// SetSplitLine overrides the horizontal split line directly above row.
func (g *Grid) SetSplitLine(row int, line tw.Line) {
	g.theme.overrideLine(row, line)
}

// OverrideSplitLine overwrites the rendered characters of the horizontal
// line above row with text, truncated to the table's width at render time.
func (g *Grid) OverrideSplitLine(row int, text string) {
	g.overrides[row] = text
}

// GetCellContent returns a cell's raw text, unaffected by style.
func (g *Grid) GetCellContent(row, col int) string {
	g.validateCell(row, col)
	return g.cells[row][col]
}

// GetBorder returns the effective border at (row, col): the theme's
// resolved border with space fallbacks applied wherever an edge is absent
// but a perpendicular neighbor forces it to exist.
func (g *Grid) GetBorder(row, col int) tw.Border {
	g.validateCell(row, col)
	return g.effectiveBorder(row, col)
}

// GetSettings returns a round-tripable Settings snapshot of a cell: its
// text, alignment, span, padding, and effective border.
func (g *Grid) GetSettings(row, col int) tw.Settings {
	g.validateCell(row, col)
	style := g.resolveStyle(tw.Cell(row, col))
	border := g.effectiveBorder(row, col)
	return tw.NewSettings().
		WithText(g.cells[row][col]).
		WithAlign(style.AlignHoriz).
		WithVerticalAlign(style.AlignVert).
		WithSpan(style.Span).
		WithPadding(style.Padding.Left, style.Padding.Right, style.Padding.Top, style.Padding.Bottom).
		WithBorder(border)
}
