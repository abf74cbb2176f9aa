// Package twwidth computes the monospace display width of strings and
// single display-cell symbols, and expands tab characters for layout.
package twwidth

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansi matches ANSI/OSC escape sequences so they can be stripped before
// measuring display width.
var ansi = compileANSIFilter()

func compileANSIFilter() *regexp.Regexp {
	const esc = "\x1b"
	const bel = "\x07"
	st := "(" + esc + "\\\\" + "|" + bel + ")"
	csi := esc + "\\[" + "[\x30-\x3f]*[\x20-\x2f]*[\x40-\x7e]"
	osc := esc + "\\]" + ".*?" + st
	return regexp.MustCompile("(" + csi + "|" + osc + ")")
}

// StringWidth returns the maximum display width among the newline-separated
// lines of s, after stripping style escape sequences, using East-Asian-width
// aware rules (an emoji like "🎩" has width 2).
func StringWidth(s string) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		w := runewidth.StringWidth(ansi.ReplaceAllLiteralString(line, ""))
		if w > max {
			max = w
		}
	}
	return max
}

// Truncate returns a prefix of s with display width <= w. Style escape
// sequences are passed through untouched so truncation never corrupts
// styling; only visible runes count against the width budget.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}

	stripped := ansi.ReplaceAllLiteralString(s, "")
	if runewidth.StringWidth(stripped) <= w {
		return s
	}

	var b strings.Builder
	var width int
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
		}

		if !inEscape {
			rw := runewidth.RuneWidth(r)
			if width+rw > w {
				break
			}
			width += rw
		}
		b.WriteRune(r)

		if inEscape && r == 'm' {
			inEscape = false
		}
	}
	return b.String()
}
