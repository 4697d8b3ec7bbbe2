package app

import (
	"errors"
	"math/rand/v2"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SeamusWaldron/cubeview/internal/camera"
	"github.com/SeamusWaldron/cubeview/internal/cube"
)

type recorded struct {
	move       cube.Move
	source     string
	mismatched int
	reset      bool
}

type fakeJournal struct {
	records []recorded
	err     error
}

func (j *fakeJournal) Record(m cube.Move, source string, mismatched int) error {
	j.records = append(j.records, recorded{move: m, source: source, mismatched: mismatched})
	return j.err
}

func (j *fakeJournal) Reset() error {
	j.records = append(j.records, recorded{reset: true})
	return j.err
}

// replay rebuilds a cube from the journal, restarting at every reset.
func (j *fakeJournal) replay() *cube.Cube {
	c := cube.New()
	for _, r := range j.records {
		if r.reset {
			c.Reset()
			continue
		}
		c.Apply(r.move)
	}
	return c
}

func newTestApp(opts ...Option) *App {
	opts = append([]Option{
		WithRand(rand.New(rand.NewPCG(3, 5))),
		WithLogger(zap.NewNop()),
	}, opts...)
	return New(opts...)
}

var rPrime = MoveAction(cube.Move{Target: cube.TargetR, Dir: cube.CounterClockwise})

// runUntilCommit ticks until a move is committed and returns the tick count.
func runUntilCommit(t *testing.T, a *App) int {
	t.Helper()
	for i := 1; i <= 1000; i++ {
		if a.Tick() {
			return i
		}
	}
	t.Fatal("move never committed")
	return 0
}

func TestNewApp(t *testing.T) {
	a := newTestApp()
	if !a.Cube.IsSolved() {
		t.Error("cube should start solved")
	}
	if a.Animating() {
		t.Error("should start idle")
	}
	if !a.View.BackfaceCulling || a.View.Wireframe || a.View.Axes || a.View.ColorOverride {
		t.Errorf("unexpected initial view %+v", a.View)
	}
	if a.Camera.Distance != camera.InitDistance {
		t.Errorf("unexpected camera distance %v", a.Camera.Distance)
	}
}

func TestMoveCommitsAfterAnimation(t *testing.T) {
	j := &fakeJournal{}
	a := newTestApp(WithJournal(j), WithFrames(4))

	if !a.Do(rPrime) {
		t.Fatal("move should start")
	}
	if !a.Cube.IsSolved() {
		t.Error("cube must not change before the animation ends")
	}
	if n := runUntilCommit(t, a); n != 4 {
		t.Errorf("expected commit on tick 4, got %d", n)
	}
	if a.Cube.Mismatched() != 12 {
		t.Errorf("expected 12 mismatched stickers, got %d", a.Cube.Mismatched())
	}
	if a.Tick() {
		t.Error("idle tick should not commit")
	}

	if len(j.records) != 1 {
		t.Fatalf("expected 1 journal record, got %d", len(j.records))
	}
	if r := j.records[0]; r.move != rPrime.Move || r.source != SourceKey || r.mismatched != 12 {
		t.Errorf("unexpected record %+v", r)
	}
}

func TestCubeChangesIgnoredWhileAnimating(t *testing.T) {
	a := newTestApp()
	a.Do(rPrime)

	for _, act := range []Action{
		MoveAction(cube.Move{Target: cube.TargetU, Dir: cube.Clockwise}),
		{Kind: ActionScramble},
		{Kind: ActionResetCube},
	} {
		if a.Do(act) {
			t.Errorf("%s should be ignored mid-animation", act)
		}
	}
	if a.Anim.Move() != rPrime.Move {
		t.Errorf("running move replaced by %s", a.Anim.Move())
	}

	runUntilCommit(t, a)
	want := cube.Applied(*cube.New(), rPrime.Move)
	if *a.Cube != want {
		t.Error("only the first move should have been applied")
	}
}

func TestCameraAndTogglesAcceptedWhileAnimating(t *testing.T) {
	a := newTestApp()
	a.Do(rPrime)

	for _, act := range []Action{
		{Kind: ActionOrbitRight},
		{Kind: ActionOrbitUp},
		{Kind: ActionZoomIn},
		{Kind: ActionToggleWireframe},
		{Kind: ActionToggleAxes},
		{Kind: ActionToggleCulling},
		{Kind: ActionToggleOverride},
	} {
		if !a.Do(act) {
			t.Errorf("%s should apply mid-animation", act)
		}
	}
	if a.Camera.Longitude != camera.LongitudeStep || a.Camera.Latitude != camera.LatitudeStep {
		t.Errorf("camera did not orbit: %+v", *a.Camera)
	}
	if a.Camera.Distance != camera.InitDistance-camera.DistanceStep {
		t.Errorf("camera did not zoom: %v", a.Camera.Distance)
	}
	if !a.View.Wireframe || !a.View.Axes || a.View.BackfaceCulling || !a.View.ColorOverride {
		t.Errorf("unexpected view %+v", a.View)
	}
	if !a.Animating() {
		t.Error("animation should still be running")
	}

	a.Do(Action{Kind: ActionResetView})
	if a.Camera.Longitude != 0 || a.Camera.Latitude != 0 || a.Camera.Distance != camera.InitDistance {
		t.Errorf("reset view failed: %+v", *a.Camera)
	}
}

func TestScrambleAndReset(t *testing.T) {
	j := &fakeJournal{}
	a := newTestApp(WithJournal(j))

	if !a.Do(Action{Kind: ActionScramble}) {
		t.Fatal("scramble should apply while idle")
	}
	if a.Animating() {
		t.Error("scramble must not animate")
	}
	if n := len(j.records); n < cube.MinScrambleMoves || n > cube.MaxScrambleMoves {
		t.Errorf("journal holds %d scramble moves", n)
	}
	replay := cube.New()
	for _, r := range j.records {
		if r.source != SourceScramble {
			t.Errorf("unexpected source %q", r.source)
		}
		replay.Apply(r.move)
	}
	if *replay != *a.Cube {
		t.Error("journalled scramble does not reproduce the cube")
	}
	if last := j.records[len(j.records)-1]; last.mismatched != a.Cube.Mismatched() {
		t.Errorf("last record mismatch %d, cube has %d", last.mismatched, a.Cube.Mismatched())
	}

	a.Do(Action{Kind: ActionResetCube})
	if !a.Cube.IsSolved() {
		t.Error("reset should solve the cube")
	}
	if last := j.records[len(j.records)-1]; !last.reset {
		t.Errorf("reset should be journalled, last record %+v", last)
	}
}

func TestResetIsJournalled(t *testing.T) {
	j := &fakeJournal{}
	a := newTestApp(WithJournal(j), WithFrames(2))

	a.Do(rPrime)
	runUntilCommit(t, a)
	a.Do(Action{Kind: ActionResetCube})
	a.Do(MoveAction(cube.Move{Target: cube.TargetU, Dir: cube.Clockwise}))
	runUntilCommit(t, a)

	if len(j.records) != 3 || !j.records[1].reset {
		t.Fatalf("expected move, reset, move in the journal, got %+v", j.records)
	}
	if got := j.replay(); *got != *a.Cube {
		t.Errorf("journal replays to %d mismatched stickers, cube has %d", got.Mismatched(), a.Cube.Mismatched())
	}
}

func TestQuit(t *testing.T) {
	a := newTestApp()
	a.Do(rPrime)
	if !a.Do(Action{Kind: ActionQuit}) || !a.Quit() {
		t.Error("quit should be accepted at any time")
	}
}

func TestJournalErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	j := &fakeJournal{err: errors.New("disk full")}
	a := newTestApp(WithJournal(j), WithLogger(zap.New(core)), WithFrames(1))

	a.Do(rPrime)
	runUntilCommit(t, a)

	if a.Cube.Mismatched() != 12 {
		t.Errorf("move should still be applied, got %d mismatched", a.Cube.Mismatched())
	}
	if logs.FilterMessage("journal write failed").Len() != 1 {
		t.Error("expected a journal warning")
	}

	applied := logs.FilterMessage("move applied").All()
	if len(applied) != 1 {
		t.Fatalf("expected one 'move applied' entry, got %d", len(applied))
	}
	if got := applied[0].ContextMap()["mismatched"]; got != int64(12) {
		t.Errorf("logged mismatched = %v, want 12", got)
	}
}

func TestUnknownActionIsNoop(t *testing.T) {
	a := newTestApp()
	if a.Do(Action{}) {
		t.Error("empty action should not change anything")
	}
}
