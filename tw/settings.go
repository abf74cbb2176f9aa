package tw

// Settings is the bag of optional per-cell fields a caller passes to
// Grid.Set: only fields actually present are applied, leaving the rest of
// the resolved style untouched.
type Settings struct {
	Text       *string
	Padding    *Padding
	Border     *Border
	Span       *int
	AlignHoriz *AlignHorizontal
	AlignVert  *AlignVertical
	Formatting *Formatting
}

// NewSettings returns an empty Settings bag.
func NewSettings() Settings { return Settings{} }

// WithText sets the text field.
func (s Settings) WithText(text string) Settings { s.Text = &text; return s }

// WithPadding sets the padding field.
func (s Settings) WithPadding(left, right, top, bottom Indent) Settings {
	p := Padding{Left: left, Right: right, Top: top, Bottom: bottom}
	s.Padding = &p
	return s
}

// WithAlign sets the horizontal alignment field.
func (s Settings) WithAlign(a AlignHorizontal) Settings { s.AlignHoriz = &a; return s }

// WithVerticalAlign sets the vertical alignment field.
func (s Settings) WithVerticalAlign(a AlignVertical) Settings { s.AlignVert = &a; return s }

// WithSpan sets the span field.
func (s Settings) WithSpan(span int) Settings { s.Span = &span; return s }

// WithBorder sets the border field.
func (s Settings) WithBorder(b Border) Settings { s.Border = &b; return s }

// WithFormatting sets the formatting field, overwriting it wholesale.
func (s Settings) WithFormatting(f Formatting) Settings { s.Formatting = &f; return s }

// HasStyleFields reports whether any field other than Text/Border was set,
// i.e. whether resolving and rewriting the Style entry is necessary.
func (s Settings) HasStyleFields() bool {
	return s.Padding != nil || s.AlignHoriz != nil || s.AlignVert != nil || s.Span != nil || s.Formatting != nil
}
