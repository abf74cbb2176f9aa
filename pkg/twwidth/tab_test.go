package twwidth

import "testing"

func TestExpandTabsDefault(t *testing.T) {
	if got := ExpandTabs("a\tb", 4); got != "a    b" {
		t.Errorf("ExpandTabs = %q, want %q", got, "a    b")
	}
}

func TestExpandTabsZeroWidth(t *testing.T) {
	if got := ExpandTabs("a\tb", 0); got != "ab" {
		t.Errorf("ExpandTabs(_, 0) = %q, want %q", got, "ab")
	}
}

func TestExpandTabsEscaped(t *testing.T) {
	got := ExpandTabs("a\\\tb", 4)
	if got != "a\\\tb" {
		t.Errorf("ExpandTabs(escaped tab) = %q, want unchanged %q", got, "a\\\tb")
	}
}

func TestExpandTabsNoTabsUnchanged(t *testing.T) {
	if got := ExpandTabs("plain", 4); got != "plain" {
		t.Errorf("ExpandTabs(no tabs) = %q, want unchanged", got)
	}
}
