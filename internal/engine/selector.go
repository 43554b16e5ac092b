package engine

import "math"

// Random is the randomness the selector draws from. *math/rand.Rand satisfies
// it; pass a seeded one for reproducible play.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// SelectMove picks the computer's move for color. ok is false only when color
// has no legal move.
//
// Low levels often answer with a uniformly random move. Otherwise every
// candidate is searched SearchDepth plies deep from the opponent's reply,
// perturbed by zero-mean noise that shrinks as the level rises, and the best
// perturbed score wins; ties go to the earliest candidate.
func SelectMove(b *Board, color Color, d Difficulty, rng Random) (Move, bool) {
	moves := AllLegalMoves(color, b)
	if len(moves) == 0 {
		return Move{}, false
	}

	if d <= randomPlayCeiling && rng.Float64()*100 < randomMovePercent(d) {
		return moves[rng.Intn(len(moves))], true
	}

	depth := SearchDepth(d)
	amplitude := noiseAmplitude(d)
	best := moves[0]
	bestScore := math.Inf(-1)
	for _, m := range moves {
		child := *b
		child.applyInPlace(m)
		score := Search(&child, depth, -Infinity, Infinity, false, color, d)
		adjusted := float64(score) + (rng.Float64()-0.5)*amplitude
		if adjusted > bestScore {
			bestScore = adjusted
			best = m
		}
	}
	return best, true
}
