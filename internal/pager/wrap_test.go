package pager

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapContent_PreservesLeadingSpaces(t *testing.T) {
	in := "│  │  └─ [00] Assistant abcdef [branch]: <text>hi</text>\nshort"
	got := wrapContent(in, 20)
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected long line to wrap, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "│  │  └─ ") {
		t.Fatalf("tree prefix lost: %q", lines[0])
	}
	if lines[len(lines)-1] != "short" {
		t.Fatalf("last line = %q", lines[len(lines)-1])
	}
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > 20 {
			t.Fatalf("line %q wider than 20 (%d)", l, w)
		}
	}
	if strings.Join(lines, "") != strings.ReplaceAll(in, "\n", "") {
		t.Fatalf("wrapping lost characters: %q", got)
	}
}

func TestWrapContent_WideRunes(t *testing.T) {
	got := wrapContent("你好世界", 4)
	if got != "你好\n世界" {
		t.Fatalf("wrapContent = %q", got)
	}
	if wrapContent("abc", 0) != "abc" {
		t.Fatalf("non-positive width should not wrap")
	}
}
