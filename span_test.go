package papergrid

import (
	"reflect"
	"testing"

	"github.com/olekukonko/papergrid/tw"
)

func stylesRow(spans ...int) []tw.Style {
	row := make([]tw.Style, len(spans))
	for i, s := range spans {
		row[i] = tw.DefaultStyle()
		row[i].Span = s
	}
	return row
}

// TestNormalizeSpansFixedPoint checks that running normalization twice on
// the same styles yields the same result.
func TestNormalizeSpansFixedPoint(t *testing.T) {
	styles := [][]tw.Style{stylesRow(1, 0, 0, 1)}
	cells := [][][]string{{{"a"}, {"b"}, {"c"}, {"d"}}}

	markInvisibleCells(styles)
	normalizeSpans(styles, cells)
	once := cloneStylesRow(styles[0])

	markInvisibleCells(styles)
	normalizeSpans(styles, cells)
	twice := cloneStylesRow(styles[0])

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalizeSpans not idempotent: first=%v second=%v", once, twice)
	}
}

func cloneStylesRow(row []tw.Style) []tw.Style {
	out := make([]tw.Style, len(row))
	copy(out, row)
	return out
}

// TestLeadingZeroSpanSwap covers the leading-zero-span fixup: a
// styles[0].Span == 0 swaps with the first visible cell to its right and
// extends the span to still cover the original right edge.
func TestLeadingZeroSpanSwap(t *testing.T) {
	styles := [][]tw.Style{stylesRow(0, 2, 1)}
	cells := [][][]string{{{"gone"}, {"kept"}, {"tail"}}}

	normalizeSpans(styles, cells)

	// The swapped-in cell originally covered columns [1, 3); at position 0
	// its span grows by its original index so the right edge is unchanged.
	if styles[0][0].Span != 3 {
		t.Errorf("styles[0][0].Span = %d, want 3", styles[0][0].Span)
	}
	if cells[0][0][0] != "kept" {
		t.Errorf("cells[0][0] = %q, want %q (content should follow the swapped style)", cells[0][0][0], "kept")
	}
}

// TestInnerZeroRunExtension covers the inner-zero-run fixup: a mid-row
// zero span not caused by a preceding span extends the nearest visible
// cell to its left.
func TestInnerZeroRunExtension(t *testing.T) {
	styles := [][]tw.Style{stylesRow(1, 0, 1)}
	cells := [][][]string{{{"a"}, {"b"}, {"c"}}}

	normalizeSpans(styles, cells)

	if styles[0][0].Span != 2 {
		t.Errorf("styles[0][0].Span = %d, want 2", styles[0][0].Span)
	}
}

// TestMarkInvisibleCells covers the invisibility pass: a span-2 cell at
// column 0 marks column 1 invisible.
func TestMarkInvisibleCells(t *testing.T) {
	styles := [][]tw.Style{stylesRow(2, 1, 1)}
	markInvisibleCells(styles)

	if styles[0][1].Span != 0 {
		t.Errorf("styles[0][1].Span = %d, want 0 (covered)", styles[0][1].Span)
	}
	if styles[0][0].Span != 2 {
		t.Errorf("styles[0][0].Span = %d, want 2 (unaffected)", styles[0][0].Span)
	}
}
