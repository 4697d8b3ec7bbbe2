package tui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const (
	restingCell = "██"
	turningCell = "▓▓"
	wireCell    = "[]"
	blankCell   = "  "
)

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// stickerStyles holds one foreground style per sticker color plus the
// override grey.
type stickerStyles struct {
	faces    [cube.NumColors]lipgloss.Style
	override lipgloss.Style
}

func newStickerStyles(p render.Palette) stickerStyles {
	var s stickerStyles
	for i, c := range p.Faces {
		s.faces[i] = lipgloss.NewStyle().Foreground(hex(c))
	}
	s.override = lipgloss.NewStyle().Foreground(hex(p.Override))
	return s
}

func (s stickerStyles) style(c cube.Color, override bool) lipgloss.Style {
	if override || int(c) >= cube.NumColors {
		return s.override
	}
	return s.faces[c]
}
