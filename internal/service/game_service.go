package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/benbeisheim/chess-ai-backend/internal/engine"
	"github.com/benbeisheim/chess-ai-backend/internal/fen"
	"github.com/benbeisheim/chess-ai-backend/internal/model"
)

// CreateRequest is what a client sends to start a game. Zero values pick the
// defaults: white, the configured difficulty and the standard position.
type CreateRequest struct {
	Color      string `json:"color"`
	Difficulty int    `json:"difficulty"`
	FEN        string `json:"fen,omitempty"`
}

type CreateResult struct {
	GameID string       `json:"game_id"`
	Color  engine.Color `json:"color"`
}

// Settings are the server-wide knobs the service needs.
type Settings struct {
	DefaultDifficulty engine.Difficulty
	ThinkingDelay     func(engine.Difficulty) time.Duration
}

type GameService struct {
	gameManager *GameManager
	settings    Settings
	logger      *zap.Logger
}

func NewGameService(gameManager *GameManager, settings Settings, logger *zap.Logger) *GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.ThinkingDelay == nil {
		settings.ThinkingDelay = func(engine.Difficulty) time.Duration { return 0 }
	}
	return &GameService{
		gameManager: gameManager,
		settings:    settings,
		logger:      logger,
	}
}

func (gs *GameService) CreateGame(playerID string, req CreateRequest) (CreateResult, error) {
	color := engine.White
	if strings.TrimSpace(req.Color) != "" {
		c, err := engine.ParseColor(strings.ToLower(strings.TrimSpace(req.Color)))
		if err != nil {
			return CreateResult{}, err
		}
		color = c
	}

	difficulty := gs.settings.DefaultDifficulty
	if req.Difficulty != 0 {
		difficulty = engine.Difficulty(req.Difficulty)
	}
	if err := difficulty.Validate(); err != nil {
		return CreateResult{}, err
	}

	state := engine.NewGameState()
	if req.FEN != "" {
		s, err := fen.DecodeState(req.FEN)
		if err != nil {
			return CreateResult{}, err
		}
		state = s
	}

	gameID := uuid.New().String()
	settings := model.Settings{
		HumanColor:    color,
		Difficulty:    difficulty,
		ThinkingDelay: gs.settings.ThinkingDelay(difficulty),
	}
	if _, err := gs.gameManager.CreateGame(gameID, playerID, state, settings); err != nil {
		return CreateResult{}, fmt.Errorf("failed to create game: %w", err)
	}
	return CreateResult{GameID: gameID, Color: color}, nil
}

func (gs *GameService) GetGameState(gameID string) (model.View, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.View{}, err
	}
	return game.View(), nil
}

func (gs *GameService) LegalMoves(gameID string, from engine.Position) ([]engine.Position, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalDestinations(from)
}

func (gs *GameService) HandleMove(gameID, playerID string, move model.MoveRequest) (model.View, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.View{}, err
	}
	return game.MakeMove(playerID, move.Move())
}

func (gs *GameService) Resign(gameID, playerID string) (model.View, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.View{}, err
	}
	return game.Resign(playerID)
}

func (gs *GameService) Reset(gameID, playerID string) (model.View, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.View{}, err
	}
	return game.Reset(playerID)
}

// ReportError sends err to one socket of gameID.
func (gs *GameService) ReportError(gameID string, conn model.Conn, err error) {
	game, gerr := gs.gameManager.GetGame(gameID)
	if gerr != nil {
		return
	}
	game.SendError(conn, err)
}

func (gs *GameService) GameCount() int {
	return gs.gameManager.Count()
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn model.Conn) error {
	gs.logger.Debug("registering connection", zap.String("game_id", gameID), zap.String("player_id", playerID))
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string, conn model.Conn) {
	gs.logger.Debug("unregistering connection", zap.String("game_id", gameID), zap.String("player_id", playerID))
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}
