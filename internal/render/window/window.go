// Package window shows the cube in a desktop window.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeview/internal/app"
	"github.com/SeamusWaldron/cubeview/internal/config"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

// Held navigation keys repeat after keyRepeatDelay ticks, every
// keyRepeatInterval ticks.
const (
	keyRepeatDelay    = 15
	keyRepeatInterval = 2
)

var background = color.RGBA{0, 0, 0, 255}

// specialKeys maps navigation keys to keymap names.
var specialKeys = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  app.KeyLeft,
	ebiten.KeyArrowRight: app.KeyRight,
	ebiten.KeyArrowUp:    app.KeyUp,
	ebiten.KeyArrowDown:  app.KeyDown,
	ebiten.KeyPageUp:     app.KeyPageUp,
	ebiten.KeyPageDown:   app.KeyPageDown,
}

// repeating reports whether a key held for d ticks fires on this tick.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// Game adapts the app to ebiten's update/draw loop. Each update is one
// animation frame.
type Game struct {
	app     *app.App
	keys    app.Keymap
	palette render.Palette
	log     *zap.Logger

	width, height int
	chars         []rune
}

// NewGame creates the ebiten game for an app.
func NewGame(a *app.App, keys app.Keymap, pal render.Palette, log *zap.Logger) *Game {
	return &Game{app: a, keys: keys, palette: pal, log: log}
}

// Update advances the animation and then handles input, so a move started
// here is drawn at its first frame.
func (g *Game) Update() error {
	var keys []string
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		keys = append(keys, string(r))
	}
	for k, name := range specialKeys {
		if repeating(inpututil.KeyPressDuration(k)) {
			keys = append(keys, name)
		}
	}

	g.frame(keys)

	if g.app.Quit() {
		g.log.Info("window closed")
		return ebiten.Termination
	}
	return nil
}

// frame runs one update: tick first, then the keys pressed this frame.
func (g *Game) frame(keys []string) {
	g.app.Tick()
	for _, key := range keys {
		g.press(key)
	}
}

func (g *Game) press(key string) {
	act, ok := g.keys.Lookup(key)
	if !ok {
		return
	}
	g.app.Do(act)
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	paint(screenPainter{screen: screen}, render.Build(g.app, g.palette, g.width, g.height))
	ebitenutil.DebugPrint(screen, g.status())
}

func (g *Game) status() string {
	s := fmt.Sprintf("mismatched: %d  fps: %0.1f", g.app.Cube.Mismatched(), ebiten.ActualFPS())
	if g.app.Animating() {
		s += fmt.Sprintf("\n%s  %+.0f deg", g.app.Anim.Move(), g.app.Anim.Angle())
	}
	return s
}

// Layout keeps the logical screen the size of the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the quit key is pressed or the
// window is closed.
func Run(a *app.App, keys app.Keymap, pal render.Palette, cfg config.WindowConfig, fps int, log *zap.Logger) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(fps)

	log.Info("window opened", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height), zap.Int("fps", fps))
	err := ebiten.RunGame(NewGame(a, keys, pal, log))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
