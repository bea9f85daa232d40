package frame

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestFrameLineCountAndWidth(t *testing.T) {
	box := New(
		WithSize(10, 4),
		WithTitle("T"),
		WithContent("hi"),
	)

	view := box.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 4 {
		t.Fatalf("want 4 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if lipgloss.Width(line) != 10 {
			t.Fatalf("line %d: want width 10, got %d", i, lipgloss.Width(line))
		}
	}
}

func TestFrameTitleAndMeta(t *testing.T) {
	box := New(
		WithSize(30, 3),
		WithTitle("data.txt"),
		WithMeta("mjd"),
	)

	top := strings.Split(ansi.Strip(box.View()), "\n")[0]
	if !strings.HasPrefix(top, "╭─ data.txt ") {
		t.Fatalf("unexpected top border %q", top)
	}
	if !strings.HasSuffix(top, " mjd ─╮") {
		t.Fatalf("unexpected top border %q", top)
	}
	if lipgloss.Width(top) != 30 {
		t.Fatalf("top border width %d, want 30", lipgloss.Width(top))
	}
}

func TestFrameDropsMetaWhenNarrow(t *testing.T) {
	box := New(
		WithSize(16, 3),
		WithTitle("a-long-title"),
		WithMeta("ydoy"),
	)

	top := strings.Split(ansi.Strip(box.View()), "\n")[0]
	if strings.Contains(top, "ydoy") {
		t.Fatalf("expected meta to be dropped, got %q", top)
	}
	if lipgloss.Width(top) != 16 {
		t.Fatalf("top border width %d, want 16", lipgloss.Width(top))
	}
}

func TestFrameTooSmall(t *testing.T) {
	if got := New(WithSize(0, 5)).View(); got != "" {
		t.Fatalf("zero width = %q, want empty", got)
	}
	if got := New(WithSize(5, 1)).View(); got != "" {
		t.Fatalf("height 1 = %q, want empty", got)
	}
	lines := strings.Split(New(WithSize(5, 2)).View(), "\n")
	if len(lines) != 2 {
		t.Fatalf("height 2 renders %d lines, want 2", len(lines))
	}
}

func TestFrameInnerSize(t *testing.T) {
	w, h := New(WithSize(20, 10)).InnerSize()
	if w != 18 || h != 8 {
		t.Fatalf("InnerSize() = %d, %d, want 18, 8", w, h)
	}
}
