package engine

// forEachLegalMove walks color's legal moves row-major by origin, then
// row-major by destination, and stops as soon as yield returns false.
func forEachLegalMove(color Color, b *Board, yield func(Move) bool) {
	for fromRow := 0; fromRow < Size; fromRow++ {
		for fromCol := 0; fromCol < Size; fromCol++ {
			if b[fromRow][fromCol].IsEmpty() || b[fromRow][fromCol].Color != color {
				continue
			}
			from := Position{Row: fromRow, Col: fromCol}
			for toRow := 0; toRow < Size; toRow++ {
				for toCol := 0; toCol < Size; toCol++ {
					to := Position{Row: toRow, Col: toCol}
					if IsLegal(b, from, to) && !yield(Move{From: from, To: to}) {
						return
					}
				}
			}
		}
	}
}

// HasAnyLegalMove stops at the first legal move found.
func HasAnyLegalMove(color Color, b *Board) bool {
	found := false
	forEachLegalMove(color, b, func(Move) bool {
		found = true
		return false
	})
	return found
}

// AllLegalMoves returns every legal move for color in a deterministic order.
func AllLegalMoves(color Color, b *Board) []Move {
	moves := make([]Move, 0, 32)
	forEachLegalMove(color, b, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// LegalDestinations lists the squares the piece on from may legally move to.
func LegalDestinations(b *Board, from Position) []Position {
	dests := []Position{}
	if !from.InBounds() || b.At(from).IsEmpty() {
		return dests
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			to := Position{Row: row, Col: col}
			if IsLegal(b, from, to) {
				dests = append(dests, to)
			}
		}
	}
	return dests
}
