// Package fen converts between engine positions and Forsyth-Edwards Notation.
//
// Parsing is delegated to github.com/corentings/chess/v2. Castling rights and
// en passant squares are accepted on input but dropped, since the engine does
// not play those moves; on output both fields are always "-".
package fen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"

	"github.com/benbeisheim/chess-ai-backend/internal/engine"
)

// Initial is the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN")

var toEngineKind = map[chess.PieceType]engine.Kind{
	chess.Pawn:   engine.Pawn,
	chess.Knight: engine.Knight,
	chess.Bishop: engine.Bishop,
	chess.Rook:   engine.Rook,
	chess.Queen:  engine.Queen,
	chess.King:   engine.King,
}

var toChessKind = map[engine.Kind]chess.PieceType{
	engine.Pawn:   chess.Pawn,
	engine.Knight: chess.Knight,
	engine.Bishop: chess.Bishop,
	engine.Rook:   chess.Rook,
	engine.Queen:  chess.Queen,
	engine.King:   chess.King,
}

// Decode parses s into a board and the side to move.
func Decode(s string) (engine.Board, engine.Color, error) {
	if err := checkKings(s); err != nil {
		return engine.Board{}, engine.NoColor, err
	}
	opt, err := chess.FEN(s)
	if err != nil {
		return engine.Board{}, engine.NoColor, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	pos := chess.NewGame(opt).Position()

	var b engine.Board
	cb := pos.Board()
	for r := 0; r < engine.Size; r++ {
		for f := 0; f < engine.Size; f++ {
			p := cb.Piece(chess.NewSquare(chess.File(f), chess.Rank(r)))
			if p == chess.NoPiece {
				continue
			}
			kind, ok := toEngineKind[p.Type()]
			if !ok {
				return engine.Board{}, engine.NoColor, fmt.Errorf("%w: unknown piece %v", ErrInvalidFEN, p)
			}
			b[engine.Size-1-r][f] = engine.Piece{Kind: kind, Color: toEngineColor(p.Color())}
		}
	}
	return b, toEngineColor(pos.Turn()), nil
}

// DecodeState parses s and builds a game state from it. Positions without
// exactly one king per side are rejected.
func DecodeState(s string) (engine.GameState, error) {
	b, toMove, err := Decode(s)
	if err != nil {
		return engine.GameState{}, err
	}
	state, err := engine.GameStateFrom(b, toMove)
	if err != nil {
		return engine.GameState{}, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}
	return state, nil
}

// Encode renders a position. fullMove is the FEN move number.
func Encode(b engine.Board, toMove engine.Color, fullMove int) string {
	squares := make(map[chess.Square]chess.Piece)
	for row := 0; row < engine.Size; row++ {
		for col := 0; col < engine.Size; col++ {
			p := b[row][col]
			if p.IsEmpty() {
				continue
			}
			sq := chess.NewSquare(chess.File(col), chess.Rank(engine.Size-1-row))
			squares[sq] = chess.NewPiece(toChessKind[p.Kind], toChessColor(p.Color))
		}
	}
	turn := "w"
	if toMove == engine.Black {
		turn = "b"
	}
	if fullMove < 1 {
		fullMove = 1
	}
	return fmt.Sprintf("%s %s - - 0 %d", chess.NewBoard(squares).String(), turn, fullMove)
}

// EncodeState renders the current position of a game. The move number counts
// from the first recorded move.
func EncodeState(s engine.GameState) string {
	return Encode(s.Board, s.ToMove, 1+len(s.History)/2)
}

// checkKings rejects placements without exactly one king per side before
// they reach the parser, which assumes both kings exist.
func checkKings(s string) error {
	placement, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	if strings.Count(placement, "K") != 1 || strings.Count(placement, "k") != 1 {
		return fmt.Errorf("%w: %w", ErrInvalidFEN, engine.ErrMissingKing)
	}
	return nil
}

func toEngineColor(c chess.Color) engine.Color {
	if c == chess.Black {
		return engine.Black
	}
	return engine.White
}

func toChessColor(c engine.Color) chess.Color {
	if c == engine.Black {
		return chess.Black
	}
	return chess.White
}
