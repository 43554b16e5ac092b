package engine

import "fmt"

// CapturedPieces lists captured pieces by the color of the captured piece.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// MoveRecord is one entry of the display history.
type MoveRecord struct {
	From  Position `json:"from"`
	To    Position `json:"to"`
	Piece Piece    `json:"piece"`
}

// GameState is the caller-owned state of one game. Play never modifies its
// receiver; it returns the successor state.
type GameState struct {
	Board    Board          `json:"board"`
	ToMove   Color          `json:"toMove"`
	Status   Status         `json:"status"`
	Captured CapturedPieces `json:"capturedPieces"`
	History  []MoveRecord   `json:"moveHistory"`
}

// NewGameState starts a game from the standard position with White to move.
func NewGameState() GameState {
	s, _ := GameStateFrom(NewBoard(), White)
	return s
}

// GameStateFrom starts a game from an arbitrary position.
func GameStateFrom(b Board, toMove Color) (GameState, error) {
	if toMove != White && toMove != Black {
		return GameState{}, fmt.Errorf("%w: side to move", ErrInvalidColor)
	}
	if err := ValidateBoard(&b); err != nil {
		return GameState{}, err
	}
	if IsInCheck(toMove.Opponent(), &b) {
		return GameState{}, ErrOpponentInCheck
	}
	return GameState{
		Board:    b,
		ToMove:   toMove,
		Status:   DeriveStatus(&b, toMove),
		Captured: CapturedPieces{White: []Piece{}, Black: []Piece{}},
		History:  []MoveRecord{},
	}, nil
}

// Play validates m for the side to move and returns the state after it.
func (s GameState) Play(m Move) (GameState, error) {
	if s.Status.Over() {
		return s, ErrGameOver
	}
	if !m.From.InBounds() || !m.To.InBounds() {
		return s, fmt.Errorf("%w: %s", ErrOutOfBounds, m)
	}
	piece := s.Board.At(m.From)
	if piece.IsEmpty() {
		return s, fmt.Errorf("%w: %s", ErrNoPiece, m.From)
	}
	if piece.Color != s.ToMove {
		return s, ErrNotYourTurn
	}
	if !IsLegal(&s.Board, m.From, m.To) {
		return s, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	next := GameState{
		ToMove:   s.ToMove.Opponent(),
		Captured: s.Captured.clone(),
		History:  append(append(make([]MoveRecord, 0, len(s.History)+1), s.History...), MoveRecord{From: m.From, To: m.To, Piece: piece}),
	}
	var captured Piece
	next.Board, captured = ApplyMove(s.Board, m)
	if !captured.IsEmpty() {
		next.Captured.add(captured)
	}
	next.Status = DeriveStatus(&next.Board, next.ToMove)
	return next, nil
}

// LastMove returns the most recent move, if any.
func (s GameState) LastMove() (Move, bool) {
	if len(s.History) == 0 {
		return Move{}, false
	}
	last := s.History[len(s.History)-1]
	return Move{From: last.From, To: last.To}, true
}

func (c CapturedPieces) clone() CapturedPieces {
	return CapturedPieces{
		White: append([]Piece{}, c.White...),
		Black: append([]Piece{}, c.Black...),
	}
}

func (c *CapturedPieces) add(p Piece) {
	if p.Color == White {
		c.White = append(c.White, p)
		return
	}
	c.Black = append(c.Black, p)
}
