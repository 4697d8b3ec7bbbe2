// Package cube provides the 3x3 cube state model and its move permutations.
package cube

import "strings"

// Color represents a sticker color. In the solved state each face carries
// the color whose value equals the face index.
type Color uint8

const (
	White  Color = 0 // Up face when solved
	Green  Color = 1 // Front face when solved
	Red    Color = 2 // Right face when solved
	Blue   Color = 3 // Back face when solved
	Orange Color = 4 // Left face when solved
	Yellow Color = 5 // Down face when solved
)

// NumColors is the number of distinct sticker colors.
const NumColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Green:
		return "G"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Face identifies one of the six faces of the cube.
type Face int

const (
	Up    Face = 0
	Front Face = 1
	Right Face = 2
	Back  Face = 3
	Left  Face = 4
	Down  Face = 5
)

const (
	// NumFaces is the number of faces on the cube.
	NumFaces = 6
	// NumSquares is the number of stickers on a face.
	NumSquares = 9
	// NumStickers is the total number of stickers.
	NumStickers = NumFaces * NumSquares
)

// Faces lists every face in index order.
var Faces = [NumFaces]Face{Up, Front, Right, Back, Left, Down}

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Front:
		return "F"
	case Right:
		return "R"
	case Back:
		return "B"
	case Left:
		return "L"
	case Down:
		return "D"
	default:
		return "?"
	}
}

// SolvedColor returns the color a face carries when the cube is solved.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// Cube is a 3x3 cube. Each face holds 9 stickers indexed row-major as seen
// from outside the face:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The faces unfold as the usual cross: Up sits above Front (Up's row 0 is
// next to Back), Down sits below Front (Down's row 0 is next to Front) and
// Left, Front, Right, Back run left to right with row 0 next to Up.
type Cube struct {
	// Stickers[face][square] = color
	Stickers [NumFaces][NumSquares]Color
}

// New creates a solved cube.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	for _, face := range Faces {
		color := face.SolvedColor()
		for i := 0; i < NumSquares; i++ {
			c.Stickers[face][i] = color
		}
	}
}

// Clone creates a copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	return c.Mismatched() == 0
}

// Mismatched counts the stickers whose color differs from the center of
// their face. A single face turn from solved leaves 12; a whole-cube
// reorientation leaves 0.
func (c *Cube) Mismatched() int {
	n := 0
	for _, face := range Faces {
		center := c.Stickers[face][4]
		for i := 0; i < NumSquares; i++ {
			if c.Stickers[face][i] != center {
				n++
			}
		}
	}
	return n
}

// ColorCounts returns how many stickers carry each color.
func (c *Cube) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for _, face := range Faces {
		for _, color := range c.Stickers[face] {
			if int(color) < NumColors {
				counts[color]++
			}
		}
	}
	return counts
}

// String returns the unfolded net of the cube.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(face Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(c.Stickers[face][row*3+col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(Up, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, face := range []Face{Left, Front, Right, Back} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(Down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
