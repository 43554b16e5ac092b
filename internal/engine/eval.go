package engine

var pieceValues = [...]int{
	NoKind: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// PieceValue is the material weight of a kind in centipawns.
func PieceValue(k Kind) int {
	if int(k) < len(pieceValues) {
		return pieceValues[k]
	}
	return 0
}

const (
	developmentBonus = 30
	mobilityWeight   = 10
	checkBonus       = 50
)

// Evaluate scores b from perspective's point of view. Higher difficulty
// enables more terms, each stacking on the previous ones.
func Evaluate(b *Board, perspective Color, d Difficulty) int {
	score := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b[row][col]
			if p.IsEmpty() {
				continue
			}
			sign := 1
			if p.Color != perspective {
				sign = -1
			}
			score += sign * PieceValue(p.Kind)

			if d >= centralityTier {
				score += sign * centrality(row, col)
			}
			if d >= expertTier && sign > 0 && isDeveloped(p, row) {
				score += developmentBonus
			}
		}
	}

	if d >= mobilityTier {
		own := len(AllLegalMoves(perspective, b))
		theirs := len(AllLegalMoves(perspective.Opponent(), b))
		score += (own - theirs) * mobilityWeight
	}

	if d >= expertTier {
		if IsInCheck(perspective.Opponent(), b) {
			score += checkBonus
		}
		if IsInCheck(perspective, b) {
			score -= checkBonus
		}
	}
	return score
}

// centrality is 10 * ((3 - |3.5-row|) + (3 - |3.5-col|)) kept in integers.
// Edge squares come out slightly negative.
func centrality(row, col int) int {
	return (30 - abs(35-10*row)) + (30 - abs(35-10*col))
}

// isDeveloped reports a minor piece that has left its home side of the board.
func isDeveloped(p Piece, row int) bool {
	if p.Kind != Knight && p.Kind != Bishop {
		return false
	}
	if p.Color == White {
		return row < 6
	}
	return row > 1
}
