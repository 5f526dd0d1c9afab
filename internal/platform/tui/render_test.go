package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(2, 0, core.Cell{Rune: '#', Color: core.ColorOrange})
	s.SetCell(3, 0, core.Cell{Rune: '#', Color: core.ColorOrange})
	s.DrawText(0, 1, "dog")

	lines := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "ab##  " {
		t.Errorf("row 0 = %q, want %q", lines[0], "ab##  ")
	}
	if lines[1] != "dog   " {
		t.Errorf("row 1 = %q, want %q", lines[1], "dog   ")
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, want plain text", got)
	}
}
