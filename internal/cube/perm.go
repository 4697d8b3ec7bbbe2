package cube

// perm is a permutation of the 54 stickers, addressed as face*9+square.
// After applying p, sticker i holds the color sticker p[i] held before.
type perm [NumStickers]uint8

// at returns the flat index of a sticker.
func at(f Face, square int) int {
	return int(f)*NumSquares + square
}

func identity() perm {
	var p perm
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// then returns the permutation that applies p and then q.
func (p perm) then(q perm) perm {
	var r perm
	for i := range r {
		r[i] = p[q[i]]
	}
	return r
}

func (p perm) inverse() perm {
	var r perm
	for i, src := range p {
		r[src] = uint8(i)
	}
	return r
}

// moved reports whether sticker i changes position under p.
func (p perm) moved(i int) bool {
	return int(p[i]) != i
}

func (p perm) apply(c *Cube) {
	old := c.Stickers
	for i, src := range p {
		c.Stickers[i/NumSquares][i%NumSquares] = old[src/NumSquares][src%NumSquares]
	}
}

// spinCW turns a face's own stickers a quarter turn clockwise: square i
// takes its color from square spinCW[i]. Corners cycle 0->2->8->6, edges
// 1->5->7->3, the center stays.
var spinCW = [NumSquares]int{6, 3, 0, 7, 4, 1, 8, 5, 2}

func spinFace(p *perm, f Face, dir Direction) {
	for i, src := range spinCW {
		if dir == Clockwise {
			p[at(f, i)] = uint8(at(f, src))
		} else {
			p[at(f, src)] = uint8(at(f, i))
		}
	}
}

// canonicalUpTurn is a clockwise quarter turn of the Up face. Row 0 of the
// side faces cycles Right -> Front -> Left -> Back -> Right.
func canonicalUpTurn() perm {
	p := identity()
	spinFace(&p, Up, Clockwise)

	ring := [4]Face{Front, Right, Back, Left}
	for k, dst := range ring {
		src := ring[(k+1)%4]
		for i := 0; i < 3; i++ {
			p[at(dst, i)] = uint8(at(src, i))
		}
	}
	return p
}

// canonicalReorient is a clockwise whole-cube turn. Clockwise about x moves
// Front to Up (Back lands on Down upside down) and spins Right clockwise and
// Left counter-clockwise. Clockwise about y moves Right to Front and spins
// Up clockwise and Down counter-clockwise.
func canonicalReorient(axis Axis) perm {
	p := identity()
	switch axis {
	case AxisX:
		for i := 0; i < NumSquares; i++ {
			p[at(Up, i)] = uint8(at(Front, i))
			p[at(Front, i)] = uint8(at(Down, i))
			p[at(Down, i)] = uint8(at(Back, NumSquares-1-i))
			p[at(Back, NumSquares-1-i)] = uint8(at(Up, i))
		}
		spinFace(&p, Right, Clockwise)
		spinFace(&p, Left, CounterClockwise)
	case AxisY:
		ring := [4]Face{Front, Right, Back, Left}
		for k, dst := range ring {
			src := ring[(k+1)%4]
			for i := 0; i < NumSquares; i++ {
				p[at(dst, i)] = uint8(at(src, i))
			}
		}
		spinFace(&p, Up, Clockwise)
		spinFace(&p, Down, CounterClockwise)
	default:
		panic("cube: unknown axis")
	}
	return p
}

func dirIndex(d Direction) int {
	if d == Clockwise {
		return 0
	}
	return 1
}

// byDir holds a clockwise permutation and its inverse.
type byDir [2]perm

func newByDir(cw perm) byDir {
	return byDir{cw, cw.inverse()}
}

func (b *byDir) get(d Direction) perm {
	return b[dirIndex(d)]
}

var (
	upTurns    = newByDir(canonicalUpTurn())
	reorients  = [2]byDir{newByDir(canonicalReorient(AxisX)), newByDir(canonicalReorient(AxisY))}
	moveTables = compileMoveTables()
)

// RotateUp turns the Up face a quarter turn in place, together with the top
// row of the four side faces.
func (c *Cube) RotateUp(dir Direction) {
	upTurns.get(dir).apply(c)
}

// Reorient turns the whole cube a quarter turn about an axis. Only the roles
// of the faces change; no face is scrambled relative to its center.
func (c *Cube) Reorient(axis Axis, dir Direction) {
	reorients[axis].get(dir).apply(c)
}
