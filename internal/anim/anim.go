// Package anim steps the fixed-length animation of a single quarter turn.
package anim

import "github.com/SeamusWaldron/cubeview/internal/cube"

// DefaultFrames is the number of frames a quarter turn takes.
const DefaultFrames = 10

// QuarterTurn is the angle of one move in degrees.
const QuarterTurn = 90.0

// Angle returns the rotation in degrees shown at frame k of an n-frame
// animation turning in direction dir.
func Angle(dir cube.Direction, k, n int) float64 {
	return float64(dir) * float64(k) * (QuarterTurn / float64(n))
}

// Animation holds at most one in-flight move. It never touches the cube:
// Advance hands the move back exactly once when the last frame has been
// shown, and the caller commits it.
type Animation struct {
	frames int
	frame  int
	move   cube.Move
	active bool
}

// New creates an idle animation of the given length. Non-positive lengths
// fall back to DefaultFrames.
func New(frames int) *Animation {
	if frames <= 0 {
		frames = DefaultFrames
	}
	return &Animation{frames: frames}
}

// Start begins animating m. It returns false, and ignores m, if another
// move is still animating.
func (a *Animation) Start(m cube.Move) bool {
	if a.active {
		return false
	}
	a.move = m
	a.frame = 1
	a.active = true
	return true
}

// Advance steps one frame. Once frame N has been shown, the next call
// returns the move with ok set and resets to idle.
func (a *Animation) Advance() (m cube.Move, ok bool) {
	if !a.active {
		return cube.Move{}, false
	}
	if a.frame < a.frames {
		a.frame++
		return cube.Move{}, false
	}
	m = a.move
	a.active = false
	a.frame = 0
	return m, true
}

// Active reports whether a move is animating.
func (a *Animation) Active() bool {
	return a.active
}

// Move returns the animating move. Only meaningful while Active.
func (a *Animation) Move() cube.Move {
	return a.move
}

// Frame returns the current frame index, 0 when idle.
func (a *Animation) Frame() int {
	return a.frame
}

// Frames returns the total number of frames per move.
func (a *Animation) Frames() int {
	return a.frames
}

// Angle returns the current rotation in degrees, 0 when idle.
func (a *Animation) Angle() float64 {
	if !a.active {
		return 0
	}
	return Angle(a.move.Dir, a.frame, a.frames)
}

// Affected reports whether a sticker turns with the animating move.
func (a *Animation) Affected(face cube.Face, square int) bool {
	return a.active && cube.Affected(a.move.Target, face, square)
}
