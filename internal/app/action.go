package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// ErrUnknownAction is returned when an action name cannot be parsed.
var ErrUnknownAction = errors.New("cubeview: unknown action")

// ActionKind identifies what an input asks the viewer to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionQuit
	ActionToggleWireframe
	ActionToggleCulling
	ActionToggleAxes
	ActionToggleOverride
	ActionResetView
	ActionResetCube
	ActionScramble
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
)

var actionNames = map[ActionKind]string{
	ActionQuit:            "quit",
	ActionToggleWireframe: "toggle-wireframe",
	ActionToggleCulling:   "toggle-culling",
	ActionToggleAxes:      "toggle-axes",
	ActionToggleOverride:  "toggle-override",
	ActionResetView:       "reset-view",
	ActionResetCube:       "reset-cube",
	ActionScramble:        "scramble",
	ActionOrbitLeft:       "orbit-left",
	ActionOrbitRight:      "orbit-right",
	ActionOrbitUp:         "orbit-up",
	ActionOrbitDown:       "orbit-down",
	ActionZoomIn:          "zoom-in",
	ActionZoomOut:         "zoom-out",
}

// Action is a single user request. Move is only set for ActionMove.
type Action struct {
	Kind ActionKind
	Move cube.Move
}

// MoveAction returns the action that animates m.
func MoveAction(m cube.Move) Action {
	return Action{Kind: ActionMove, Move: m}
}

// IsCubeChange reports whether the action alters the sticker table and so
// must wait for any running animation.
func (a Action) IsCubeChange() bool {
	switch a.Kind {
	case ActionMove, ActionResetCube, ActionScramble:
		return true
	}
	return false
}

func (a Action) String() string {
	if a.Kind == ActionMove {
		return a.Move.Notation()
	}
	if name, ok := actionNames[a.Kind]; ok {
		return name
	}
	return "none"
}

// ParseAction parses an action name such as "scramble" or a move in
// standard notation such as "R'".
func ParseAction(name string) (Action, error) {
	name = strings.TrimSpace(name)
	for kind, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action{Kind: kind}, nil
		}
	}
	m, err := cube.ParseMove(name)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return MoveAction(m), nil
}
