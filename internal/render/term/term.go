// Package term shows the cube in a true-color terminal using half-block
// pixels.
package term

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"fortio.org/terminal/ansipixels"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeview/internal/app"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

// Viewer draws an app into the terminal.
type Viewer struct {
	ap      *ansipixels.AnsiPixels
	app     *app.App
	keys    app.Keymap
	palette render.Palette
	log     *zap.Logger
	img     *image.NRGBA
}

// Run takes over the terminal and runs the frame loop at fps until the quit
// key is pressed or ctx is done.
func Run(ctx context.Context, a *app.App, keys app.Keymap, pal render.Palette, fps float64, log *zap.Logger) error {
	ap := ansipixels.NewAnsiPixels(fps)
	if err := ap.Open(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	ap.HideCursor()
	defer func() {
		ap.ShowCursor()
		ap.ClearScreen()
		ap.Restore()
	}()
	ap.ClearScreen()
	ap.SyncBackgroundColor()

	v := &Viewer{ap: ap, app: a, keys: keys, palette: pal, log: log}
	v.resize()
	ap.OnResize = func() error {
		v.resize()
		return nil
	}

	log.Info("terminal opened", zap.Int("cols", ap.W), zap.Int("rows", ap.H), zap.Float64("fps", fps))
	return ap.FPSTicks(ctx, func(context.Context) bool {
		v.frame(ap.Data)
		if err := v.draw(); err != nil {
			log.Error("terminal draw failed", zap.Error(err))
			return false
		}
		return !v.app.Quit()
	})
}

func (v *Viewer) resize() {
	// Two pixels per cell, leaving the last row for status.
	v.img = image.NewNRGBA(image.Rect(0, 0, v.ap.W, max(v.ap.H-1, 1)*2))
}

// frame ticks the animation and then applies the keys read this frame, so
// a move started here is drawn at its first frame.
func (v *Viewer) frame(data []byte) {
	v.app.Tick()
	v.handleInput(data)
}

func (v *Viewer) handleInput(data []byte) {
	for _, key := range parseKeys(data) {
		if act, ok := v.keys.Lookup(key); ok {
			v.app.Do(act)
		}
	}
}

func (v *Viewer) draw() error {
	bg := v.ap.Background
	draw.Draw(v.img, v.img.Rect, &image.Uniform{color.RGBA{bg.R, bg.G, bg.B, 255}}, image.Point{}, draw.Src)

	b := v.img.Bounds()
	rasterize(v.img, render.Build(v.app, v.palette, b.Dx(), b.Dy()))

	rgba := &image.RGBA{Pix: v.img.Pix, Stride: v.img.Stride, Rect: v.img.Rect}
	v.ap.StartSyncMode()
	var err error
	if v.ap.ColorOutput.TrueColor {
		err = v.ap.DrawTrueColorImage(0, 0, rgba)
	} else {
		err = v.ap.Draw216ColorImage(0, 0, rgba)
	}
	if err != nil {
		v.ap.EndSyncMode()
		return err
	}
	v.ap.WriteAtStr(0, v.ap.H-1, v.status())
	v.ap.EndSyncMode()
	return nil
}

func (v *Viewer) status() string {
	s := fmt.Sprintf(" mismatched %2d", v.app.Cube.Mismatched())
	if v.app.Animating() {
		s += fmt.Sprintf("  %-2s %+4.0f°", v.app.Anim.Move(), v.app.Anim.Angle())
	}
	if len(s) < v.ap.W {
		s += fmt.Sprintf("%*s", v.ap.W-len(s)-1, "")
	}
	return s
}
