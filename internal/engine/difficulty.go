package engine

import "fmt"

// Difficulty is the computer's strength. The configurable range is
// MinDifficulty..MaxDifficulty; the evaluator additionally knows an expert
// tier above that range which only direct callers of Evaluate can reach.
type Difficulty int

const (
	MinDifficulty Difficulty = 1
	MaxDifficulty Difficulty = 10

	// evaluator gates
	centralityTier Difficulty = 6
	mobilityTier   Difficulty = 8
	expertTier     Difficulty = 11

	// at or below this level the selector sometimes skips search entirely
	randomPlayCeiling Difficulty = 5
)

func (d Difficulty) Validate() error {
	if d < MinDifficulty || d > MaxDifficulty {
		return fmt.Errorf("%w: %d not in %d..%d", ErrInvalidDifficulty, d, MinDifficulty, MaxDifficulty)
	}
	return nil
}

// Label is the menu category of the level.
func (d Difficulty) Label() string {
	if d <= randomPlayCeiling {
		return "Easy"
	}
	return "Average"
}

// SearchDepth is the number of plies searched below each candidate move.
func SearchDepth(d Difficulty) int {
	if d >= 6 && d <= 10 {
		return 2
	}
	return 1
}

// randomMovePercent is the chance, in percent, that the selector plays a
// uniformly random move without searching.
func randomMovePercent(d Difficulty) float64 {
	if d > randomPlayCeiling {
		return 0
	}
	return float64(100 - int(d)*15)
}

// noiseAmplitude is the width of the zero-mean perturbation added to each
// candidate's score.
func noiseAmplitude(d Difficulty) float64 {
	capped := d
	if capped > MaxDifficulty {
		capped = MaxDifficulty
	}
	return float64((11 - int(capped)) * 50)
}
