package model

import "github.com/benbeisheim/chess-ai-backend/internal/engine"

// ComputerName is shown for the side the engine plays.
const ComputerName = "computer"

// ClientPlayer is one side as sent to clients.
type ClientPlayer struct {
	Name     string       `json:"name"`
	Color    engine.Color `json:"color"`
	Computer bool         `json:"computer"`
	// TimeUsed is in milliseconds.
	TimeUsed int64 `json:"timeUsed"`
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}
