package papergrid

import (
	"testing"

	"github.com/olekukonko/papergrid/tw"
)

// TestOverrideSplitLineText checks that overwriting the rendered
// characters of the top split line with text truncates it to the table
// width and suppresses the border glyphs it displaces.
func TestOverrideSplitLineText(t *testing.T) {
	g := New(2, 2)
	g.Set(tw.Cell(0, 0), tw.NewSettings().WithText("aa"))
	g.Set(tw.Cell(0, 1), tw.NewSettings().WithText("bb"))
	g.Set(tw.Cell(1, 0), tw.NewSettings().WithText("cc"))
	g.Set(tw.Cell(1, 1), tw.NewSettings().WithText("dd"))
	g.OverrideSplitLine(0, "-Table")

	lines := splitLines(g.String())
	if len(lines) == 0 {
		t.Fatal("expected rendered output")
	}
	first := lines[0]
	if first[:len("-Table")] != "-Table" {
		t.Errorf("first line = %q, want to start with %q", first, "-Table")
	}
	if w := stringDisplayWidth(first); w != g.TotalWidth() {
		t.Errorf("overridden split line width = %d, want table width %d", w, g.TotalWidth())
	}
}

func TestClearTheme(t *testing.T) {
	g := New(1, 1)
	g.Set(tw.Cell(0, 0), tw.NewSettings().WithText("x"))
	g.OverrideSplitLine(0, "custom")
	g.SetBorders(tw.Borders{})

	g.ClearTheme()

	if g.GetBorders() != tw.DefaultBorders() {
		t.Error("ClearTheme did not restore default borders")
	}
	want := "+-+\n|x|\n+-+\n"
	if got := g.String(); got != want {
		t.Errorf("after ClearTheme, String() = %q, want %q", got, want)
	}
}

func TestSetSplitLineOverride(t *testing.T) {
	g := New(2, 2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			g.Set(tw.Cell(r, c), tw.NewSettings().WithText("x"))
		}
	}
	g.SetSplitLine(1, tw.Line{Horizontal: tw.NewSymbol('=')})

	lines := splitLines(g.String())
	// lines: [top, row0, split(row1), row1, bottom]
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	middle := lines[2]
	for _, r := range middle {
		if r != '=' && r != '+' {
			t.Errorf("split line %q contains unexpected rune %q", middle, r)
			break
		}
	}
}

func TestBorderPrecedenceCellOverridesLine(t *testing.T) {
	g := New(2, 2)
	g.SetSplitLine(1, tw.Line{Horizontal: tw.NewSymbol('=')})
	g.SetBorder(tw.Cell(1, 0), tw.Border{Top: tw.NewSymbol('*')})

	border := g.GetBorder(1, 0)
	if border.Top.String() != "*" {
		t.Errorf("cell-level override = %q, want %q (per-cell should beat the row-split-line override)", border.Top.String(), "*")
	}
}

func TestHasHorizontalFalseWhenAllAbsent(t *testing.T) {
	g := New(2, 2)
	g.SetBorders(tw.Borders{})

	if g.hasHorizontal(0) {
		t.Error("hasHorizontal(0) = true, want false when no piece is present anywhere on that line")
	}
	// With no borders and no content/padding, every row height is 0, so
	// the renderer emits nothing at all.
	if got := g.String(); got != "" {
		t.Errorf("String() with no borders and empty cells = %q, want empty", got)
	}
}
