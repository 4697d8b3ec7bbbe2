package cube

var (
	topRow      = []int{0, 1, 2}
	bottomRow   = []int{6, 7, 8}
	leftColumn  = []int{0, 3, 6}
	rightColumn = []int{2, 5, 8}
)

// slices lists, for each turning face, the squares of the neighbouring
// faces that travel with it.
var slices = [NumFaces][NumFaces][]int{
	Up: {
		Front: topRow,
		Right: topRow,
		Back:  topRow,
		Left:  topRow,
	},
	Front: {
		Up:    bottomRow,
		Left:  rightColumn,
		Down:  topRow,
		Right: leftColumn,
	},
	Right: {
		Up:    rightColumn,
		Front: rightColumn,
		Down:  rightColumn,
		Back:  leftColumn,
	},
	Back: {
		Up:    topRow,
		Right: rightColumn,
		Down:  bottomRow,
		Left:  leftColumn,
	},
	Left: {
		Up:    leftColumn,
		Back:  rightColumn,
		Down:  leftColumn,
		Front: leftColumn,
	},
	Down: {
		Front: bottomRow,
		Left:  bottomRow,
		Back:  bottomRow,
		Right: bottomRow,
	},
}

// Affected reports whether the sticker at (face, square) belongs to the
// slice that turns with target t. All nine stickers of a turning face
// belong to it, and every sticker belongs to a whole-cube reorientation.
// The answer depends only on the target, never on direction or frame.
func Affected(t Target, face Face, square int) bool {
	if !t.IsFace() {
		return true
	}
	if t.Face() == face {
		return true
	}
	for _, s := range slices[t.Face()][face] {
		if s == square {
			return true
		}
	}
	return false
}
