package engine

const (
	// Infinity bounds the alpha-beta window. It is larger than any reachable
	// score, including MateScore.
	Infinity = 1 << 30

	// MateScore is returned when the side to move at a node is mated.
	MateScore = 999999
)

// Search is minimax with alpha-beta pruning. Scores are always from root's
// point of view: the maximizing plies are root's moves, the minimizing plies
// the opponent's. Moves are tried in AllLegalMoves order.
func Search(b *Board, depth, alpha, beta int, maximizing bool, root Color, d Difficulty) int {
	if depth == 0 {
		return Evaluate(b, root, d)
	}

	toMove := root
	if !maximizing {
		toMove = root.Opponent()
	}
	moves := AllLegalMoves(toMove, b)
	if len(moves) == 0 {
		if IsInCheck(toMove, b) {
			if maximizing {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}

	if maximizing {
		best := -Infinity
		for _, m := range moves {
			child := *b
			child.applyInPlace(m)
			score := Search(&child, depth-1, alpha, beta, false, root, d)
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		child := *b
		child.applyInPlace(m)
		score := Search(&child, depth-1, alpha, beta, true, root, d)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}
