package render

import (
	"image/color"

	"github.com/SeamusWaldron/cubeview/internal/config"
	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Palette maps sticker colors to RGB.
type Palette struct {
	Faces    [cube.NumColors]color.RGBA
	Override color.RGBA
}

// DefaultPalette returns the standard sticker colors.
func DefaultPalette() Palette {
	return Palette{
		Faces: [cube.NumColors]color.RGBA{
			cube.White:  {255, 255, 255, 255},
			cube.Green:  {0, 155, 72, 255},
			cube.Red:    {183, 18, 52, 255},
			cube.Blue:   {0, 70, 173, 255},
			cube.Orange: {255, 88, 0, 255},
			cube.Yellow: {255, 213, 0, 255},
		},
		Override: color.RGBA{123, 123, 123, 255},
	}
}

// NewPalette builds a palette from configured #rrggbb strings.
func NewPalette(cfg config.PaletteConfig) (Palette, error) {
	p := DefaultPalette()
	for i, s := range cfg.Faces {
		if i >= cube.NumColors {
			break
		}
		rgb, err := config.ParseHexColor(s)
		if err != nil {
			return p, err
		}
		p.Faces[i] = color.RGBA{rgb[0], rgb[1], rgb[2], 255}
	}
	if cfg.Override != "" {
		rgb, err := config.ParseHexColor(cfg.Override)
		if err != nil {
			return p, err
		}
		p.Override = color.RGBA{rgb[0], rgb[1], rgb[2], 255}
	}
	return p, nil
}

// Color returns the RGB for a sticker color.
func (p Palette) Color(c cube.Color) color.RGBA {
	if int(c) >= cube.NumColors {
		return color.RGBA{255, 0, 255, 255}
	}
	return p.Faces[c]
}
