package engine

import "errors"

var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidColor      = errors.New("invalid color")
	ErrMissingKing       = errors.New("board must hold exactly one king per color")
	ErrOpponentInCheck   = errors.New("side not to move is in check")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrNoPiece           = errors.New("no piece at from square")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrIllegalMove       = errors.New("illegal move")
	ErrGameOver          = errors.New("game is over")
)
