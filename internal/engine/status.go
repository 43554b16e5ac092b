package engine

type StatusKind uint8

const (
	Playing StatusKind = iota
	Check
	Checkmate
	Stalemate
)

var statusNames = [...]string{"playing", "check", "checkmate", "stalemate"}

func (k StatusKind) String() string {
	if int(k) < len(statusNames) {
		return statusNames[k]
	}
	return "unknown"
}

func (k StatusKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Status is derived from a board and the side to move, never stored on its
// own. Color is the side in check for Check and the winner for Checkmate.
type Status struct {
	Kind  StatusKind `json:"kind"`
	Color Color      `json:"color,omitempty"`
}

func (s Status) Over() bool {
	return s.Kind == Checkmate || s.Kind == Stalemate
}

func (s Status) String() string {
	if s.Color == NoColor {
		return s.Kind.String()
	}
	return s.Kind.String() + "-" + s.Color.String()
}

// DeriveStatus computes the status of the game with toMove about to play.
func DeriveStatus(b *Board, toMove Color) Status {
	inCheck := IsInCheck(toMove, b)
	if !HasAnyLegalMove(toMove, b) {
		if inCheck {
			return Status{Kind: Checkmate, Color: toMove.Opponent()}
		}
		return Status{Kind: Stalemate}
	}
	if inCheck {
		return Status{Kind: Check, Color: toMove}
	}
	return Status{Kind: Playing}
}
