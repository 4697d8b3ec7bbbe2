package cube

import "math/rand/v2"

// Scramble length bounds.
const (
	MinScrambleMoves = 20
	MaxScrambleMoves = 60
)

// RandomSequence returns n face turns drawn uniformly from the six faces
// and both directions.
func RandomSequence(rng *rand.Rand, n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		dir := Clockwise
		if rng.IntN(2) == 1 {
			dir = CounterClockwise
		}
		moves[i] = Move{Target: FaceTarget(Faces[rng.IntN(NumFaces)]), Dir: dir}
	}
	return moves
}

// ScrambleSequence returns a random sequence of between MinScrambleMoves
// and MaxScrambleMoves face turns.
func ScrambleSequence(rng *rand.Rand) []Move {
	n := MinScrambleMoves + rng.IntN(MaxScrambleMoves-MinScrambleMoves+1)
	return RandomSequence(rng, n)
}

// Scramble applies a random scramble and returns the moves applied.
func (c *Cube) Scramble(rng *rand.Rand) []Move {
	moves := ScrambleSequence(rng)
	c.ApplyMoves(moves)
	return moves
}
