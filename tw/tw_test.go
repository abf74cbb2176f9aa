package tw

import "testing"

func TestEntityValidate(t *testing.T) {
	valid := []Entity{Global(), Row(1), Column(2), Cell(1, 2)}
	for _, e := range valid {
		if err := e.Validate(); err != nil {
			t.Errorf("Validate(%v) = %v, want nil", e, err)
		}
	}
}

func TestAlignVerticalOffset(t *testing.T) {
	tests := []struct {
		align   AlignVertical
		height  int
		content int
		want    int
	}{
		{AlignTop, 5, 2, 0},
		{AlignBottom, 5, 2, 3},
		{AlignMiddle, 5, 1, 2},
	}
	for _, tt := range tests {
		if got := tt.align.Offset(tt.height, tt.content); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.height, tt.content, got, tt.want)
		}
	}
}

func TestStyleClone(t *testing.T) {
	s := DefaultStyle()
	s.Span = 3
	clone := s.Clone()
	clone.Span = 9

	if s.Span != 3 {
		t.Errorf("original mutated by clone: Span = %d, want 3", s.Span)
	}
}

func TestDefaultStyleDefaults(t *testing.T) {
	s := DefaultStyle()
	if s.Span != 1 {
		t.Errorf("DefaultStyle().Span = %d, want 1", s.Span)
	}
	if s.AlignHoriz != AlignLeft || s.AlignVert != AlignTop {
		t.Errorf("DefaultStyle() alignment = (%v, %v), want (Left, Top)", s.AlignHoriz, s.AlignVert)
	}
	if s.Formatting.TabWidth != 4 {
		t.Errorf("DefaultStyle().Formatting.TabWidth = %d, want 4", s.Formatting.TabWidth)
	}
}

func TestBorderIsZero(t *testing.T) {
	if !(Border{}).IsZero() {
		t.Error("zero-value Border.IsZero() = false, want true")
	}
	b := Border{}.WithTop(NewSymbol('-'))
	if b.IsZero() {
		t.Error("Border with Top set reports IsZero() = true")
	}
}

func TestBorderBuilders(t *testing.T) {
	dash := NewSymbol('-')
	b := FilledBorder(dash)
	if b.Top != dash || b.BottomRight != dash {
		t.Error("FilledBorder did not set every side and corner")
	}
}

func TestSettingsHasStyleFields(t *testing.T) {
	s := NewSettings().WithText("x")
	if s.HasStyleFields() {
		t.Error("HasStyleFields() = true for a text-only Settings")
	}

	s2 := NewSettings().WithSpan(2)
	if !s2.HasStyleFields() {
		t.Error("HasStyleFields() = false for a Settings with Span set")
	}
}

func TestLineIsZero(t *testing.T) {
	if !(Line{}).IsZero() {
		t.Error("zero-value Line.IsZero() = false, want true")
	}
	l := Line{Horizontal: NewSymbol('=')}
	if l.IsZero() {
		t.Error("Line with Horizontal set reports IsZero() = true")
	}
}
