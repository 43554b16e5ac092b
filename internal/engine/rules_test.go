package engine

import "testing"

func TestPseudoLegal(t *testing.T) {
	start := NewBoard()
	open := mustBoard(t,
		"Ke1", "ke8",
		"Qd4", "Rh1", "Bc1", "Nb1",
		"Pe2", "pd5", "pf3", "Pa2", "pb3",
	)

	tests := []struct {
		name  string
		board Board
		move  string
		want  bool
	}{
		{"pawn single step", start, "e2e3", true},
		{"pawn double step from start", start, "e2e4", true},
		{"pawn triple step", start, "e2e5", false},
		{"pawn backwards", open, "e2e1", false},
		{"black pawn single step", start, "e7e6", true},
		{"black pawn double step", start, "e7e5", true},
		{"pawn diagonal onto empty square", start, "e2d3", false},
		{"pawn captures diagonally", open, "e2f3", true},
		{"pawn captures forward", mustBoard(t, "Ke1", "ke8", "Pe4", "pe5"), "e4e5", false},
		{"pawn double step blocked", mustBoard(t, "Ke1", "ke8", "Pe2", "pe3"), "e2e4", false},
		{"pawn double step onto piece", mustBoard(t, "Ke1", "ke8", "Pe2", "pe4"), "e2e4", false},
		{"pawn double step off start rank", mustBoard(t, "Ke1", "ke8", "Pe3"), "e3e5", false},
		{"pawn captures toward the b-file", open, "a2b3", true},
		{"knight jump over pieces", start, "g1f3", true},
		{"knight bad geometry", start, "g1g3", false},
		{"knight onto own piece", start, "g1e2", false},
		{"bishop blocked", start, "c1e3", false},
		{"bishop diagonal", open, "c1g5", true},
		{"bishop non diagonal", open, "c1c4", false},
		{"rook file clear", open, "h1h8", true},
		{"rook diagonal", open, "h1g2", false},
		{"queen captures on file", open, "d4d5", true},
		{"queen beyond capture", open, "d4d6", false},
		{"queen diagonal", open, "d4g7", true},
		{"queen knight shape", open, "d4e6", false},
		{"queen long diagonal", open, "d4a1", true},
		{"king single step", open, "e1f2", true},
		{"king two steps", open, "e1g1", false},
		{"same square", open, "e1e1", false},
		{"empty origin", open, "e4e5", false},
		{"captures own piece", start, "a1a2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMove(t, tt.move)
			if got := PseudoLegal(&tt.board, m.From, m.To); got != tt.want {
				t.Errorf("PseudoLegal(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestIsLegalRejectsSelfCheck(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		move   string
		pseudo bool
		legal  bool
	}{
		{
			name:   "pinned bishop leaves the file",
			board:  mustBoard(t, "Ke1", "Be2", "re8", "ka8"),
			move:   "e2d3",
			pseudo: true,
			legal:  false,
		},
		{
			name:   "pinned rook slides along the pin",
			board:  mustBoard(t, "Ke1", "Re2", "re8", "ka8"),
			move:   "e2e5",
			pseudo: true,
			legal:  true,
		},
		{
			name:   "king steps into rook file",
			board:  mustBoard(t, "Ke1", "rd8", "ka8"),
			move:   "e1d1",
			pseudo: true,
			legal:  false,
		},
		{
			name:   "king next to enemy king",
			board:  mustBoard(t, "Ke4", "ke6"),
			move:   "e4e5",
			pseudo: true,
			legal:  false,
		},
		{
			name:   "capturing the checker",
			board:  mustBoard(t, "Ke1", "Nc3", "qe2", "ka8", "rh2"),
			move:   "e1e2",
			pseudo: true,
			legal:  false,
		},
		{
			name:   "knight captures the checker",
			board:  mustBoard(t, "Ke1", "Nc3", "qe2", "ka8"),
			move:   "c3e2",
			pseudo: true,
			legal:  true,
		},
		{
			name:   "ignoring a check",
			board:  mustBoard(t, "Ke1", "Pa2", "re8", "ka8"),
			move:   "a2a3",
			pseudo: true,
			legal:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMove(t, tt.move)
			if got := PseudoLegal(&tt.board, m.From, m.To); got != tt.pseudo {
				t.Errorf("PseudoLegal(%s) = %v, want %v", tt.move, got, tt.pseudo)
			}
			if got := IsLegal(&tt.board, m.From, m.To); got != tt.legal {
				t.Errorf("IsLegal(%s) = %v, want %v", tt.move, got, tt.legal)
			}
		})
	}
}

func TestIsLegalLeavesBoardUntouched(t *testing.T) {
	b := mustBoard(t, "Ke1", "Be2", "re8", "ka8")
	snapshot := b
	m := mustMove(t, "e2d3")
	IsLegal(&b, m.From, m.To)
	if b != snapshot {
		t.Error("IsLegal modified the board it was given")
	}
}

func TestOutOfBoundsIsNeverLegal(t *testing.T) {
	b := NewBoard()
	if PseudoLegal(&b, Position{Row: 6, Col: 4}, Position{Row: 8, Col: 4}) {
		t.Error("move off the board accepted")
	}
	if PseudoLegal(&b, Position{Row: -1, Col: 0}, Position{Row: 0, Col: 0}) {
		t.Error("origin off the board accepted")
	}
}
