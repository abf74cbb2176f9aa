package papergrid

import (
	"testing"

	"github.com/olekukonko/papergrid/tw"
)

func TestComposeCellLineAlignment(t *testing.T) {
	style := tw.DefaultStyle()
	lines := []string{"hi"}

	tests := []struct {
		name  string
		align tw.AlignHorizontal
		want  string
	}{
		{"left", tw.AlignLeft, "hi   "},
		{"right", tw.AlignRight, "   hi"},
		{"center", tw.AlignCenter, " hi  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := style
			s.AlignHoriz = tt.align
			got := composeCellLine(0, lines, s, 5, 1)
			if got != tt.want {
				t.Errorf("composeCellLine(%s) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestComposeCellLinePadding(t *testing.T) {
	style := tw.DefaultStyle()
	style.Padding.Left = tw.Spaced(2)
	style.Padding.Right = tw.Spaced(1)

	got := composeCellLine(0, []string{"x"}, style, 6, 1)
	if want := "  x   "; got != want {
		t.Errorf("composeCellLine() = %q, want %q", got, want)
	}
}

func TestComposeCellLineVerticalAlignment(t *testing.T) {
	style := tw.DefaultStyle()
	style.AlignVert = tw.AlignMiddle
	lines := []string{"x"}
	height := 3

	var got []string
	for i := 0; i < height; i++ {
		got = append(got, composeCellLine(i, lines, style, 1, height))
	}
	want := []string{" ", "x", " "}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestComposeCellLineVerticalTrim(t *testing.T) {
	style := tw.DefaultStyle()
	style.Formatting.VerticalTrim = true
	style.AlignVert = tw.AlignTop
	lines := []string{"", "  ", "content", "", ""}

	got := composeCellLine(0, lines, style, len("content"), 1)
	if got != "content" {
		t.Errorf("composeCellLine() = %q, want %q", got, "content")
	}
}

func TestComposeCellLineHorizontalTrim(t *testing.T) {
	style := tw.DefaultStyle()
	style.Formatting.HorizontalTrim = true
	style.Formatting.AllowLinesAlignment = true

	got := composeCellLine(0, []string{"  padded  "}, style, len("  padded  "), 1)
	want := "padded" + "    "
	if got != want {
		t.Errorf("composeCellLine() = %q, want %q", got, want)
	}
}

func TestEmojiWidth(t *testing.T) {
	if w := stringDisplayWidth("🎩"); w != 2 {
		t.Errorf("stringDisplayWidth(hat emoji) = %d, want 2", w)
	}
	if w := stringDisplayWidth("Rust 💕"); w != 7 {
		t.Errorf("stringDisplayWidth(\"Rust 💕\") = %d, want 7", w)
	}
}
