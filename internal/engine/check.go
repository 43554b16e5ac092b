package engine

// FindKing returns the square of color's king. ok is false when the board has
// none.
func FindKing(color Color, b *Board) (pos Position, ok bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if p := b[row][col]; p.Kind == King && p.Color == color {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// IsInCheck reports whether any opposing piece has a pseudo-legal move onto
// color's king. A board without that king is treated as not in check; use
// ValidateBoard to reject such boards up front.
func IsInCheck(color Color, b *Board) bool {
	king, ok := FindKing(color, b)
	if !ok {
		return false
	}
	return isAttackedBy(b, king, color.Opponent())
}

func isAttackedBy(b *Board, target Position, attacker Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col].Color != attacker {
				continue
			}
			if PseudoLegal(b, Position{Row: row, Col: col}, target) {
				return true
			}
		}
	}
	return false
}

// ValidateBoard enforces the invariant the rest of the package assumes:
// exactly one king of each color.
func ValidateBoard(b *Board) error {
	var white, black int
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b[row][col]
			if p.Kind != King {
				continue
			}
			switch p.Color {
			case White:
				white++
			case Black:
				black++
			}
		}
	}
	if white != 1 || black != 1 {
		return ErrMissingKing
	}
	return nil
}
