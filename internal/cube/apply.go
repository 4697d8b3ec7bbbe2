package cube

// step is one primitive of a move sequence: either the Up turn (in the
// move's own direction) or a fixed whole-cube reorientation.
type step struct {
	turnUp bool
	axis   Axis
	dir    Direction
}

var upTurn = step{turnUp: true}

func reorient(axis Axis, dir Direction) step {
	return step{axis: axis, dir: dir}
}

var (
	xCW  = reorient(AxisX, Clockwise)
	xCCW = reorient(AxisX, CounterClockwise)
	yCW  = reorient(AxisY, Clockwise)
	yCCW = reorient(AxisY, CounterClockwise)
)

// faceSequences expresses every face turn as: bring the face to Up, turn
// Up, bring it back.
var faceSequences = [NumFaces][]step{
	Up:    {upTurn},
	Front: {xCW, upTurn, xCCW},
	Right: {yCW, xCW, upTurn, xCCW, yCCW},
	Back:  {xCCW, upTurn, xCW},
	Left:  {yCCW, xCW, upTurn, xCCW, yCW},
	Down:  {xCW, xCW, upTurn, xCCW, xCCW},
}

// compileSequence folds a face sequence into one permutation.
func compileSequence(steps []step, dir Direction) perm {
	p := identity()
	for _, s := range steps {
		if s.turnUp {
			p = p.then(upTurns.get(dir))
		} else {
			p = p.then(reorients[s.axis].get(s.dir))
		}
	}
	return p
}

// compileMoveTables builds the clockwise table of every target; the
// counter-clockwise tables are their inverses.
func compileMoveTables() [NumTargets]byDir {
	var tables [NumTargets]byDir
	for _, f := range Faces {
		tables[FaceTarget(f)] = newByDir(compileSequence(faceSequences[f], Clockwise))
	}
	tables[TargetX] = reorients[AxisX]
	tables[TargetY] = reorients[AxisY]
	return tables
}

func table(m Move) perm {
	if m.Target < 0 || int(m.Target) >= NumTargets {
		panic("cube: unknown move target " + m.Target.String())
	}
	return moveTables[m.Target].get(m.Dir)
}

// Apply applies a move to the cube.
func (c *Cube) Apply(m Move) {
	table(m).apply(c)
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// Applied returns the state reached by applying m to c. c is not modified.
func Applied(c Cube, m Move) Cube {
	table(m).apply(&c)
	return c
}

// applyStepwise applies a move one primitive at a time instead of through
// the compiled table.
func (c *Cube) applyStepwise(m Move) {
	if !m.Target.IsFace() {
		c.Reorient(Axis(m.Target-TargetX), m.Dir)
		return
	}
	for _, s := range faceSequences[m.Target.Face()] {
		if s.turnUp {
			c.RotateUp(m.Dir)
		} else {
			c.Reorient(s.axis, s.dir)
		}
	}
}
