// Package tui shows the cube as an unfolded net in the terminal. Stickers
// in the turning slice are shaded while a move animates.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubeview/internal/app"
	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

const recentMoves = 20

type tickMsg time.Time

// Model is the bubbletea model for the net view.
type Model struct {
	app      *app.App
	keys     app.Keymap
	styles   stickerStyles
	interval time.Duration
	title    string

	queue    []cube.Move
	history  []cube.Move
	quitting bool
}

// New creates a net view ticking fps frames per second.
func New(a *app.App, keys app.Keymap, pal render.Palette, fps int) *Model {
	if fps <= 0 {
		fps = 60
	}
	return &Model{
		app:      a,
		keys:     keys,
		styles:   newStickerStyles(pal),
		interval: time.Second / time.Duration(fps),
		title:    "cubeview",
	}
}

// Replay queues moves to animate one after another, as if typed.
func (m *Model) Replay(title string, moves []cube.Move) {
	m.title = title
	m.queue = append(m.queue, moves...)
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "esc":
			m.app.Do(app.Action{Kind: app.ActionQuit})
		default:
			if act, ok := m.keys.Lookup(key); ok {
				m.app.Do(act)
			}
		}
		if m.app.Quit() {
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		m.step()
		if m.app.Quit() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tick()
	}

	return m, nil
}

// step advances one frame, then feeds the replay queue when idle so a
// queued move is first shown at frame 1.
func (m *Model) step() {
	move := m.app.Anim.Move()
	if m.app.Tick() {
		m.history = append(m.history, move)
	}
	if !m.app.Animating() && len(m.queue) > 0 {
		m.app.Do(app.MoveAction(m.queue[0]))
		m.queue = m.queue[1:]
	}
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.net())
	b.WriteString("\n")

	if m.app.Animating() {
		a := m.app.Anim
		b.WriteString(fmt.Sprintf("Turning: %s %s\n",
			turnStyle.Render(a.Move().Notation()),
			statusStyle.Render(fmt.Sprintf("%+.0f° (frame %d/%d)", a.Angle(), a.Frame(), a.Frames()))))
	} else {
		b.WriteString("Turning: -\n")
	}
	b.WriteString(fmt.Sprintf("Mismatched: %d\n", m.app.Cube.Mismatched()))
	if len(m.queue) > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Queued: %d", len(m.queue))))
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(m.history) > recentMoves {
			start = len(m.history) - recentMoves
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(cube.FormatSequence(m.history[start:])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	b.WriteString("\n")

	return b.String()
}

var helpTargets = []cube.Target{
	cube.TargetU, cube.TargetF, cube.TargetL, cube.TargetB, cube.TargetR, cube.TargetD,
	cube.TargetX, cube.TargetY,
}

var helpActions = []struct {
	label string
	kind  app.ActionKind
}{
	{"scramble", app.ActionScramble},
	{"reset", app.ActionResetCube},
	{"grey", app.ActionToggleOverride},
	{"quit", app.ActionQuit},
}

// help lists the bound keys, so overridden bindings show up.
func (m *Model) help() string {
	var parts []string
	add := func(label string, a app.Action) {
		if key := m.keys.KeyFor(a); key != "" {
			parts = append(parts, key+"="+label)
		}
	}
	for _, t := range helpTargets {
		for _, dir := range []cube.Direction{cube.Clockwise, cube.CounterClockwise} {
			mv := cube.Move{Target: t, Dir: dir}
			add(mv.Notation(), app.MoveAction(mv))
		}
	}
	for _, h := range helpActions {
		add(h.label, app.Action{Kind: h.kind})
	}
	return strings.Join(parts, " ")
}

// net renders the unfolded cube: Up above, Left Front Right Back across,
// Down below.
func (m *Model) net() string {
	var b strings.Builder
	indent := strings.Repeat(" ", 3*len(blankCell)+1)

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		m.writeRow(&b, cube.Up, row)
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for i, f := range []cube.Face{cube.Left, cube.Front, cube.Right, cube.Back} {
			if i > 0 {
				b.WriteString(" ")
			}
			m.writeRow(&b, f, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		m.writeRow(&b, cube.Down, row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) writeRow(b *strings.Builder, f cube.Face, row int) {
	view := m.app.View
	for col := 0; col < 3; col++ {
		sq := row*3 + col
		cell := restingCell
		switch {
		case view.Wireframe:
			cell = wireCell
		case m.app.Anim.Affected(f, sq):
			cell = turningCell
		}
		b.WriteString(m.styles.style(m.app.Cube.Stickers[f][sq], view.ColorOverride).Render(cell))
	}
}
