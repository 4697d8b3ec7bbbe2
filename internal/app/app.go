// Package app owns the viewer state: the cube, the running animation, the
// camera and the render toggles. Front-ends feed it actions and frame
// ticks and read it back to draw.
package app

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/camera"
	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/logger"
)

// Move sources recorded in the journal.
const (
	SourceKey      = "key"
	SourceScramble = "scramble"
)

// Journal receives every move committed to the cube, and every reset of
// the cube to solved.
type Journal interface {
	Record(m cube.Move, source string, mismatched int) error
	Reset() error
}

// View holds the render toggles.
type View struct {
	Wireframe       bool
	Axes            bool
	BackfaceCulling bool
	ColorOverride   bool
}

// DefaultView is the view the viewer starts with.
func DefaultView() View {
	return View{BackfaceCulling: true}
}

// App is the complete viewer state.
type App struct {
	Cube   *cube.Cube
	Anim   *anim.Animation
	Camera *camera.Orbit
	View   View

	rng     *rand.Rand
	journal Journal
	log     *zap.Logger
	quit    bool
}

// Option configures an App.
type Option func(*options)

type options struct {
	rng     *rand.Rand
	journal Journal
	log     *zap.Logger
	frames  int
	view    View
}

// WithRand sets the random source used for scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithJournal records every committed move.
func WithJournal(j Journal) Option {
	return func(o *options) {
		o.journal = j
	}
}

// WithLogger sets the logger. The default is the process-wide logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithFrames sets the number of frames per quarter turn.
func WithFrames(n int) Option {
	return func(o *options) {
		o.frames = n
	}
}

// WithView sets the initial render toggles.
func WithView(v View) Option {
	return func(o *options) {
		o.view = v
	}
}

// New creates an App with a solved cube and the camera in its initial
// position.
func New(opts ...Option) *App {
	o := &options{
		frames: anim.DefaultFrames,
		view:   DefaultView(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed>>17|1))
	}
	if o.log == nil {
		o.log = logger.Log
	}

	return &App{
		Cube:    cube.New(),
		Anim:    anim.New(o.frames),
		Camera:  camera.New(),
		View:    o.view,
		rng:     o.rng,
		journal: o.journal,
		log:     o.log,
	}
}

// Quit reports whether a quit action has been received.
func (a *App) Quit() bool {
	return a.quit
}

// Animating reports whether a move is mid-animation.
func (a *App) Animating() bool {
	return a.Anim.Active()
}

// Do applies an action and reports whether anything visible changed.
// Moves, reset and scramble are dropped while an animation runs; camera,
// toggles and quit always apply.
func (a *App) Do(act Action) bool {
	if act.IsCubeChange() && a.Anim.Active() {
		a.log.Debug("action ignored during animation",
			zap.Stringer("action", act),
			zap.Stringer("animating", a.Anim.Move()))
		return false
	}

	switch act.Kind {
	case ActionMove:
		a.Anim.Start(act.Move)
		a.log.Debug("move started", zap.String("move", act.Move.Notation()))
	case ActionQuit:
		a.quit = true
		a.log.Info("quit requested")
	case ActionToggleWireframe:
		a.View.Wireframe = !a.View.Wireframe
	case ActionToggleCulling:
		a.View.BackfaceCulling = !a.View.BackfaceCulling
	case ActionToggleAxes:
		a.View.Axes = !a.View.Axes
	case ActionToggleOverride:
		a.View.ColorOverride = !a.View.ColorOverride
	case ActionResetView:
		a.Camera.Reset()
	case ActionResetCube:
		a.Cube.Reset()
		a.log.Info("cube reset")
		a.recordReset()
	case ActionScramble:
		a.scramble()
	case ActionOrbitLeft:
		a.Camera.MoveLongitude(-1)
	case ActionOrbitRight:
		a.Camera.MoveLongitude(1)
	case ActionOrbitUp:
		a.Camera.MoveLatitude(1)
	case ActionOrbitDown:
		a.Camera.MoveLatitude(-1)
	case ActionZoomIn:
		a.Camera.Zoom(-1)
	case ActionZoomOut:
		a.Camera.Zoom(1)
	default:
		return false
	}
	return true
}

func (a *App) scramble() {
	moves := cube.ScrambleSequence(a.rng)
	for _, m := range moves {
		a.Cube.Apply(m)
		a.record(m, SourceScramble)
	}
	a.log.Info("cube scrambled",
		zap.Int("moves", len(moves)),
		zap.String("sequence", cube.FormatSequence(moves)),
		zap.Int("mismatched", a.Cube.Mismatched()))
}

// Tick advances the animation by one frame. It reports whether a move was
// committed to the cube on this tick.
func (a *App) Tick() bool {
	m, done := a.Anim.Advance()
	if !done {
		return false
	}
	a.Cube.Apply(m)
	a.log.Info("move applied",
		zap.String("move", m.Notation()),
		zap.Int("mismatched", a.Cube.Mismatched()))
	a.record(m, SourceKey)
	return true
}

func (a *App) record(m cube.Move, source string) {
	if a.journal == nil {
		return
	}
	if err := a.journal.Record(m, source, a.Cube.Mismatched()); err != nil {
		a.log.Warn("journal write failed", zap.String("move", m.Notation()), zap.Error(err))
	}
}

func (a *App) recordReset() {
	if a.journal == nil {
		return
	}
	if err := a.journal.Reset(); err != nil {
		a.log.Warn("journal write failed", zap.String("move", "reset"), zap.Error(err))
	}
}
