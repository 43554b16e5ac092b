// Package engine implements the chess rules and the computer opponent.
//
// Everything in this package is a pure function over Board values. A Board is
// an array, so assigning or passing it copies the whole grid; simulations in
// the validator and the search mutate their own copies and never alias a
// board owned by a caller.
package engine

import (
	"encoding/json"
	"fmt"
)

type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return ""
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor accepts "white" or "black".
func ParseColor(s string) (Color, error) {
	switch s {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return NoColor, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Opponent returns the other side. NoColor maps to itself.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// forward is the row delta of a pawn advance.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnStartRow() int {
	if c == White {
		return 6
	}
	return 1
}

// Piece is the content of a square. The zero value is an empty square.
type Piece struct {
	Kind  Kind  `json:"type"`
	Color Color `json:"color"`
}

var NoPiece = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}

// MarshalJSON renders empty squares as null.
func (p Piece) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte("null"), nil
	}
	type piece Piece
	return json.Marshal(piece(p))
}

// Position addresses a square. Row 0 is Black's back rank, row 7 White's;
// column 0 is the a-file.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// String returns the square name, e.g. "e2".
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, Size-p.Row)
}

// ParseSquare converts a square name such as "e2" to a Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("%w: square %q", ErrOutOfBounds, s)
	}
	return Position{Row: Size - int(s[1]-'0'), Col: int(s[0] - 'a')}, nil
}

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

const Size = 8

type Board [Size][Size]Piece

func (b *Board) At(p Position) Piece {
	return b[p.Row][p.Col]
}

func (b *Board) Set(p Position, piece Piece) {
	b[p.Row][p.Col] = piece
}

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	for col := 0; col < Size; col++ {
		b[0][col] = Piece{Kind: backRank[col], Color: Black}
		b[1][col] = Piece{Kind: Pawn, Color: Black}
		b[6][col] = Piece{Kind: Pawn, Color: White}
		b[7][col] = Piece{Kind: backRank[col], Color: White}
	}
	return b
}

// ApplyMove moves whatever stands on m.From to m.To and returns the new board
// along with the piece that was on m.To (NoPiece if it was empty). No legality
// is checked.
func ApplyMove(b Board, m Move) (Board, Piece) {
	captured := b.At(m.To)
	b.Set(m.To, b.At(m.From))
	b.Set(m.From, NoPiece)
	return b, captured
}

// applyInPlace is ApplyMove for callers that already own a scratch copy.
func (b *Board) applyInPlace(m Move) {
	b[m.To.Row][m.To.Col] = b[m.From.Row][m.From.Col]
	b[m.From.Row][m.From.Col] = NoPiece
}
