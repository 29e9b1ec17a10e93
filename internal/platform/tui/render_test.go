package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/splitjoin/internal/core"
)

func TestPaletteRenderPlainText(t *testing.T) {
	// A renderer on a non-terminal writer emits no escape sequences.
	p := NewPalette(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '●', core.ColorBrightCyan)
	s.SetColored(3, 0, '◇', core.ColorBrightYellow)
	s.DrawTextColored(0, 1, "xyz", core.ColorGray)

	got := p.Render(s)
	if got != s.String() {
		t.Errorf("Render() = %q, want %q", got, s.String())
	}
}

func TestPaletteUnknownColorIsPlain(t *testing.T) {
	p := NewPalette(lipgloss.NewRenderer(io.Discard))

	if got := p.style(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q", got)
	}
	if _, ok := p.styles[core.ColorOrange]; !ok {
		t.Error("palette is missing orange")
	}
}
