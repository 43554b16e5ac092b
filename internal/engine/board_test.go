package engine

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		square string
		want   Piece
	}{
		{"e1", Piece{Kind: King, Color: White}},
		{"d1", Piece{Kind: Queen, Color: White}},
		{"a1", Piece{Kind: Rook, Color: White}},
		{"g1", Piece{Kind: Knight, Color: White}},
		{"c8", Piece{Kind: Bishop, Color: Black}},
		{"e8", Piece{Kind: King, Color: Black}},
		{"h7", Piece{Kind: Pawn, Color: Black}},
		{"b2", Piece{Kind: Pawn, Color: White}},
		{"e4", NoPiece},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := b.At(mustSquare(t, tt.square)); got != tt.want {
				t.Errorf("At(%s) = %v, want %v", tt.square, got, tt.want)
			}
		})
	}

	if err := ValidateBoard(&b); err != nil {
		t.Errorf("ValidateBoard(start) = %v", err)
	}
}

func TestApplyMoveIsPureAndReversible(t *testing.T) {
	before := mustBoard(t, "Ke1", "ke8", "Qd1", "rd7")
	m := mustMove(t, "d1d7")

	after, captured := ApplyMove(before, m)

	if diff := cmp.Diff(mustBoard(t, "Ke1", "ke8", "Qd1", "rd7"), before); diff != "" {
		t.Fatalf("ApplyMove mutated its input (-want +got):\n%s", diff)
	}
	if want := (Piece{Kind: Rook, Color: Black}); captured != want {
		t.Errorf("captured = %v, want %v", captured, want)
	}
	if got := after.At(m.To); got.Kind != Queen {
		t.Errorf("destination holds %v, want white queen", got)
	}

	restored := after
	restored.Set(m.From, restored.At(m.To))
	restored.Set(m.To, captured)
	if diff := cmp.Diff(before, restored); diff != "" {
		t.Errorf("manual reversal differs (-want +got):\n%s", diff)
	}
}

func TestApplyMoveToEmptySquare(t *testing.T) {
	_, captured := ApplyMove(NewBoard(), Move{From: Position{Row: 6, Col: 4}, To: Position{Row: 4, Col: 4}})
	if !captured.IsEmpty() {
		t.Errorf("captured = %v, want empty", captured)
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := Position{Row: row, Col: col}
			got, err := ParseSquare(p.String())
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", p.String(), err)
			}
			if got != p {
				t.Errorf("ParseSquare(%q) = %+v, want %+v", p.String(), got, p)
			}
		}
	}

	if got := (Position{Row: 7, Col: 4}).String(); got != "e1" {
		t.Errorf("String() = %q, want e1", got)
	}

	for _, bad := range []string{"", "e", "e9", "i1", "E2", "e22"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) succeeded, want error", bad)
		}
	}
}

func TestColorParsing(t *testing.T) {
	for _, c := range []Color{White, Black} {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), got, err)
		}
		if c.Opponent().Opponent() != c {
			t.Errorf("%v.Opponent().Opponent() != %v", c, c)
		}
	}
	if _, err := ParseColor("red"); err == nil {
		t.Error("ParseColor(red) succeeded")
	}
}

func TestPieceJSON(t *testing.T) {
	row := [3]Piece{{Kind: Pawn, Color: White}, NoPiece, {Kind: King, Color: Black}}
	got, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[{"type":"pawn","color":"white"},null,{"type":"king","color":"black"}]`
	if string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}
