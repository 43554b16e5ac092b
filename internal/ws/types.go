package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages exchanged over a
// game socket
type MessageType string

const (
	// client -> server
	MessageTypeMove   MessageType = "move"
	MessageTypeResign MessageType = "resign"
	MessageTypeReset  MessageType = "reset"

	// server -> client
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage encodes payload into a message of type t.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

func NewError(msg string) Message {
	raw, _ := json.Marshal(ErrorPayload{Error: msg})
	return Message{Type: MessageTypeError, Payload: raw}
}
