package engine

import "testing"

func TestEvaluateStartIsBalanced(t *testing.T) {
	b := NewBoard()
	for _, d := range []Difficulty{1, 5, 6, 8, 10, expertTier} {
		for _, c := range []Color{White, Black} {
			if got := Evaluate(&b, c, d); got != 0 {
				t.Errorf("Evaluate(start, %v, %d) = %d, want 0", c, d, got)
			}
		}
	}
}

func TestEvaluateTiers(t *testing.T) {
	// a lone white knight on d4: value 320, centrality 25+25, eight moves
	knight := mustBoard(t, "Nd4")

	tests := []struct {
		name        string
		perspective Color
		difficulty  Difficulty
		want        int
	}{
		{"material only", White, 5, 320},
		{"material only, other side", Black, 5, -320},
		{"centrality", White, 6, 370},
		{"centrality, other side", Black, 7, -370},
		{"mobility", White, 8, 450},
		{"mobility, other side", Black, 10, -450},
		{"development", White, expertTier, 480},
		{"development is only for own pieces", Black, expertTier, -450},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(&knight, tt.perspective, tt.difficulty); got != tt.want {
				t.Errorf("Evaluate = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluateMaterial(t *testing.T) {
	b := NewBoard()
	b.Set(mustSquare(t, "d8"), NoPiece)
	if got := Evaluate(&b, White, 1); got != 900 {
		t.Errorf("Evaluate(White) without black queen = %d, want 900", got)
	}
	if got := Evaluate(&b, Black, 1); got != -900 {
		t.Errorf("Evaluate(Black) without black queen = %d, want -900", got)
	}
}

func TestEvaluateExpertCheckTerm(t *testing.T) {
	// rook on e4 checks the black king; no minor pieces so only the check term differs
	b := mustBoard(t, "Ke1", "ke8", "Re4")
	white := Evaluate(&b, White, expertTier) - Evaluate(&b, White, MaxDifficulty)
	black := Evaluate(&b, Black, expertTier) - Evaluate(&b, Black, MaxDifficulty)
	if white != checkBonus {
		t.Errorf("white check term = %d, want %d", white, checkBonus)
	}
	if black != -checkBonus {
		t.Errorf("black check term = %d, want %d", black, -checkBonus)
	}
}

func TestCentrality(t *testing.T) {
	tests := []struct {
		row, col int
		want     int
	}{
		{3, 3, 50},
		{4, 4, 50},
		{0, 0, -10},
		{7, 7, -10},
		{0, 3, 20},
	}
	for _, tt := range tests {
		if got := centrality(tt.row, tt.col); got != tt.want {
			t.Errorf("centrality(%d,%d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}
