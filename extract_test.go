package papergrid

import (
	"testing"

	"github.com/olekukonko/papergrid/tw"
)

func TestExtractIdenticalRender(t *testing.T) {
	g := New(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.Set(tw.Cell(r, c), tw.NewSettings().WithText("v"))
		}
	}

	sub := g.Extract(1, 3, 1, 3)
	if sub.CountRows() != 2 || sub.CountColumns() != 2 {
		t.Fatalf("Extract dims = (%d,%d), want (2,2)", sub.CountRows(), sub.CountColumns())
	}

	full := New(2, 2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			full.Set(tw.Cell(r, c), tw.NewSettings().WithText("v"))
		}
	}

	if sub.String() != full.String() {
		t.Errorf("Extract().String() = %q, want %q", sub.String(), full.String())
	}
}

func TestExtractPreservesAlignmentAndSpan(t *testing.T) {
	g := New(2, 3)
	g.Set(tw.Cell(0, 0), tw.NewSettings().WithText("ab").WithSpan(2).WithAlign(tw.AlignCenter))
	g.Set(tw.Cell(1, 0), tw.NewSettings().WithText("x"))
	g.Set(tw.Cell(1, 1), tw.NewSettings().WithText("y"))

	sub := g.Extract(0, 2, 0, 2)
	style := sub.Style(tw.Cell(0, 0))
	if style.Span != 2 {
		t.Errorf("extracted span = %d, want 2", style.Span)
	}
	if style.AlignHoriz != tw.AlignCenter {
		t.Errorf("extracted alignment = %v, want AlignCenter", style.AlignHoriz)
	}
}

func TestExtractOutOfRangePanics(t *testing.T) {
	g := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range extract")
		}
	}()
	g.Extract(0, 5, 0, 2)
}
