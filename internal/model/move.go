package model

import "github.com/benbeisheim/chess-ai-backend/internal/engine"

// MoveRequest is the body of a move, over REST or websocket.
type MoveRequest struct {
	From engine.Position `json:"from"`
	To   engine.Position `json:"to"`
}

func (r MoveRequest) Move() engine.Move {
	return engine.Move{From: r.From, To: r.To}
}

// Result explains why a game ended. Winner is empty for a stalemate.
type Result struct {
	Reason string       `json:"reason"`
	Winner engine.Color `json:"winner,omitempty"`
}

const (
	ReasonCheckmate   = "checkmate"
	ReasonStalemate   = "stalemate"
	ReasonResignation = "resignation"
)
