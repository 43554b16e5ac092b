package engine

// PseudoLegal reports whether the piece on from may move to to by its movement
// geometry and capture rules, ignoring whether the move exposes its own king.
// It is what the check oracle uses to test attacks, so it must never consult
// IsInCheck itself.
func PseudoLegal(b *Board, from, to Position) bool {
	if !from.InBounds() || !to.InBounds() || from == to {
		return false
	}
	piece := b.At(from)
	if piece.IsEmpty() {
		return false
	}
	target := b.At(to)
	if !target.IsEmpty() && target.Color == piece.Color {
		return false
	}

	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	absRow, absCol := abs(rowDiff), abs(colDiff)

	switch piece.Kind {
	case Pawn:
		dir := piece.Color.forward()
		if colDiff == 0 && target.IsEmpty() {
			if rowDiff == dir {
				return true
			}
			return from.Row == piece.Color.pawnStartRow() &&
				rowDiff == 2*dir &&
				b[from.Row+dir][from.Col].IsEmpty()
		}
		return absCol == 1 && rowDiff == dir && !target.IsEmpty()
	case Knight:
		return (absRow == 2 && absCol == 1) || (absRow == 1 && absCol == 2)
	case Bishop:
		return absRow == absCol && isPathClear(b, from, to)
	case Rook:
		return (rowDiff == 0 || colDiff == 0) && isPathClear(b, from, to)
	case Queen:
		return (rowDiff == 0 || colDiff == 0 || absRow == absCol) && isPathClear(b, from, to)
	case King:
		return absRow <= 1 && absCol <= 1
	}
	return false
}

// IsLegal reports whether the move is pseudo-legal and does not leave the
// mover's king in check.
func IsLegal(b *Board, from, to Position) bool {
	if !PseudoLegal(b, from, to) {
		return false
	}
	color := b.At(from).Color
	scratch := *b
	scratch.applyInPlace(Move{From: from, To: to})
	return !IsInCheck(color, &scratch)
}

// isPathClear checks every square strictly between from and to along a rank,
// file or diagonal. Callers guarantee the two squares are aligned.
func isPathClear(b *Board, from, to Position) bool {
	rowStep := sign(to.Row - from.Row)
	colStep := sign(to.Col - from.Col)
	row, col := from.Row+rowStep, from.Col+colStep
	for row != to.Row || col != to.Col {
		if !b[row][col].IsEmpty() {
			return false
		}
		row += rowStep
		col += colStep
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
