package controller

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/benbeisheim/chess-ai-backend/internal/middleware"
	"github.com/benbeisheim/chess-ai-backend/internal/model"
	"github.com/benbeisheim/chess-ai-backend/internal/service"
	"github.com/benbeisheim/chess-ai-backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
	logger      *zap.Logger
}

func NewWebSocketController(gameService *service.GameService, logger *zap.Logger) *WebSocketController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebSocketController{
		gameService: gameService,
		logger:      logger,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)
	logger := wsc.logger.With(zap.String("game_id", gameID), zap.String("player_id", playerID))

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		logger.Info("refusing connection", zap.Error(err))
		_ = c.WriteJSON(ws.NewError(err.Error()))
		_ = c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.Debug("connection closed", zap.Error(err))
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.gameService.ReportError(gameID, c, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			logger.Debug("message rejected", zap.String("type", string(msg.Type)), zap.Error(err))
			wsc.gameService.ReportError(gameID, c, err)
		}
	}
}

// handleMessage applies one inbound message. The resulting state reaches the
// client through the game's broadcast.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	var err error
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if uerr := json.Unmarshal(msg.Payload, &move); uerr != nil {
			return fmt.Errorf("malformed move: %w", uerr)
		}
		_, err = wsc.gameService.HandleMove(gameID, playerID, move)
	case ws.MessageTypeResign:
		_, err = wsc.gameService.Resign(gameID, playerID)
	case ws.MessageTypeReset:
		_, err = wsc.gameService.Reset(gameID, playerID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
	return err
}
