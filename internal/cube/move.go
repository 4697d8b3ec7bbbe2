package cube

import (
	"errors"
	"strings"
)

// ErrInvalidNotation is returned when a move string cannot be parsed.
var ErrInvalidNotation = errors.New("cube: invalid move notation")

// Direction is the rotation sense of a quarter turn, viewed from outside
// the turning face (or from the positive end of the reorientation axis).
// The value is the sign of the rotation angle about the outward axis.
type Direction int

const (
	Clockwise        Direction = -1
	CounterClockwise Direction = 1
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "?"
	}
}

// Axis is a whole-cube reorientation axis.
type Axis int

const (
	AxisX Axis = 0 // through Left and Right, turns like R
	AxisY Axis = 1 // through Down and Up, turns like U
)

// Target is what a move turns: one of the six faces, or the whole cube
// about the x or y axis.
type Target int

const (
	TargetU Target = iota
	TargetF
	TargetR
	TargetB
	TargetL
	TargetD
	TargetX
	TargetY
)

// NumTargets is the number of distinct move targets.
const NumTargets = 8

// Targets lists every move target.
var Targets = [NumTargets]Target{TargetU, TargetF, TargetR, TargetB, TargetL, TargetD, TargetX, TargetY}

// FaceTarget returns the target that turns the given face.
func FaceTarget(f Face) Target {
	return Target(f)
}

// IsFace reports whether the target is a single face rather than the whole cube.
func (t Target) IsFace() bool {
	return t >= TargetU && t <= TargetD
}

// Face returns the face turned by a face target.
func (t Target) Face() Face {
	return Face(t)
}

func (t Target) String() string {
	switch t {
	case TargetX:
		return "x"
	case TargetY:
		return "y"
	}
	if t.IsFace() {
		return t.Face().String()
	}
	return "?"
}

// Move is a single quarter turn.
type Move struct {
	Target Target
	Dir    Direction
}

// Notation returns the standard notation for this move.
// Examples: U, U', R, x, y'
func (m Move) Notation() string {
	if m.Dir == CounterClockwise {
		return m.Target.String() + "'"
	}
	return m.Target.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	return Move{Target: m.Target, Dir: m.Dir.Opposite()}
}

// ParseMove parses a single move in standard notation.
// Face letters are upper case; reorientations accept x/y in either case.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Move{}, ErrInvalidNotation
	}

	var target Target
	switch s[0] {
	case 'U':
		target = TargetU
	case 'F':
		target = TargetF
	case 'R':
		target = TargetR
	case 'B':
		target = TargetB
	case 'L':
		target = TargetL
	case 'D':
		target = TargetD
	case 'x', 'X':
		target = TargetX
	case 'y', 'Y':
		target = TargetY
	default:
		return Move{}, ErrInvalidNotation
	}

	switch s[1:] {
	case "":
		return Move{Target: target, Dir: Clockwise}, nil
	case "'":
		return Move{Target: target, Dir: CounterClockwise}, nil
	default:
		return Move{}, ErrInvalidNotation
	}
}

// ParseSequence parses space-separated moves, e.g. "R U R' U'".
func ParseSequence(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSequence renders moves as space-separated notation.
func FormatSequence(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
