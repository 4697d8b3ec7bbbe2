package app

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Names of the non-character keys. Front-ends translate their own key
// codes to these.
const (
	KeyLeft     = "left"
	KeyRight    = "right"
	KeyUp       = "up"
	KeyDown     = "down"
	KeyPageUp   = "pgup"
	KeyPageDown = "pgdown"
)

// Keymap binds key names to actions.
type Keymap map[string]Action

func move(t cube.Target, d cube.Direction) Action {
	return MoveAction(cube.Move{Target: t, Dir: d})
}

// DefaultKeymap returns the stock bindings. Digits turn a face
// counter-clockwise and the letter below them turns it clockwise.
func DefaultKeymap() Keymap {
	return Keymap{
		"q": {Kind: ActionQuit},
		"w": {Kind: ActionToggleWireframe},
		"b": {Kind: ActionToggleCulling},
		"x": {Kind: ActionToggleAxes},
		"m": {Kind: ActionToggleOverride},
		"r": {Kind: ActionResetView},
		"i": {Kind: ActionResetCube},
		"0": {Kind: ActionScramble},

		"1": move(cube.TargetU, cube.CounterClockwise),
		"a": move(cube.TargetU, cube.Clockwise),
		"2": move(cube.TargetF, cube.CounterClockwise),
		"s": move(cube.TargetF, cube.Clockwise),
		"3": move(cube.TargetL, cube.CounterClockwise),
		"d": move(cube.TargetL, cube.Clockwise),
		"4": move(cube.TargetB, cube.CounterClockwise),
		"f": move(cube.TargetB, cube.Clockwise),
		"5": move(cube.TargetR, cube.CounterClockwise),
		"g": move(cube.TargetR, cube.Clockwise),
		"6": move(cube.TargetD, cube.CounterClockwise),
		"h": move(cube.TargetD, cube.Clockwise),
		"o": move(cube.TargetX, cube.CounterClockwise),
		"p": move(cube.TargetX, cube.Clockwise),
		"k": move(cube.TargetY, cube.CounterClockwise),
		"l": move(cube.TargetY, cube.Clockwise),

		KeyLeft:     {Kind: ActionOrbitLeft},
		KeyRight:    {Kind: ActionOrbitRight},
		KeyUp:       {Kind: ActionOrbitUp},
		KeyDown:     {Kind: ActionOrbitDown},
		KeyPageUp:   {Kind: ActionZoomIn},
		KeyPageDown: {Kind: ActionZoomOut},
	}
}

// Lookup returns the action bound to key. Letters match in either case.
func (k Keymap) Lookup(key string) (Action, bool) {
	if a, ok := k[key]; ok {
		return a, true
	}
	a, ok := k[strings.ToLower(key)]
	return a, ok
}

// Override rebinds keys from a key -> action name map, as read from the
// config file.
func (k Keymap) Override(bindings map[string]string) error {
	for key, name := range bindings {
		a, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("binding %q: %w", key, err)
		}
		k[key] = a
	}
	return nil
}

// KeyFor returns a key bound to the action, preferring the shortest name,
// for help text. The empty string means the action is unbound.
func (k Keymap) KeyFor(a Action) string {
	best := ""
	for key, bound := range k {
		if bound != a {
			continue
		}
		if best == "" || len(key) < len(best) || (len(key) == len(best) && key < best) {
			best = key
		}
	}
	return best
}
