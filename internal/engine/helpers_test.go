package engine

import (
	"testing"
	"unicode"
)

var kindByLetter = map[rune]Kind{
	'P': Pawn, 'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King,
}

// mustBoard builds a board from placements like "Ke1" (white king on e1) or
// "qd8" (black queen on d8).
func mustBoard(t *testing.T, placements ...string) Board {
	t.Helper()
	var b Board
	for _, pl := range placements {
		if len(pl) != 3 {
			t.Fatalf("bad placement %q", pl)
		}
		letter := rune(pl[0])
		color := White
		if unicode.IsLower(letter) {
			color = Black
		}
		kind, ok := kindByLetter[unicode.ToUpper(letter)]
		if !ok {
			t.Fatalf("bad piece letter in %q", pl)
		}
		b.Set(mustSquare(t, pl[1:]), Piece{Kind: kind, Color: color})
	}
	return b
}

func mustSquare(t *testing.T, s string) Position {
	t.Helper()
	p, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return p
}

func mustMove(t *testing.T, s string) Move {
	t.Helper()
	if len(s) != 4 {
		t.Fatalf("bad move %q", s)
	}
	return Move{From: mustSquare(t, s[:2]), To: mustSquare(t, s[2:])}
}

func mustPlay(t *testing.T, s GameState, moves ...string) GameState {
	t.Helper()
	for _, mv := range moves {
		next, err := s.Play(mustMove(t, mv))
		if err != nil {
			t.Fatalf("Play(%s): %v", mv, err)
		}
		s = next
	}
	return s
}
