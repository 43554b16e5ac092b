// service/game_manager.go
package service

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/benbeisheim/chess-ai-backend/internal/engine"
	"github.com/benbeisheim/chess-ai-backend/internal/model"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")

	ErrNotAPlayer       = model.ErrNotAPlayer
	ErrComputerThinking = model.ErrComputerThinking
)

// GameManager owns the live games.
type GameManager struct {
	games   map[string]*model.Game
	mu      sync.RWMutex
	options model.Options
	logger  *zap.Logger
}

// NewGameManager creates an empty registry. opts are handed to every game it
// creates.
func NewGameManager(opts model.Options) *GameManager {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &GameManager{
		games:   make(map[string]*model.Game),
		options: opts,
		logger:  opts.Logger,
	}
}

// CreateGame registers a new game and starts it.
func (gm *GameManager) CreateGame(gameID, playerID string, state engine.GameState, settings model.Settings) (*model.Game, error) {
	gm.mu.Lock()
	if _, exists := gm.games[gameID]; exists {
		gm.mu.Unlock()
		return nil, ErrGameExists
	}
	game := model.NewGame(gameID, playerID, state, settings, gm.options)
	gm.games[gameID] = game
	gm.mu.Unlock()

	gm.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.String("player_id", playerID),
		zap.Stringer("human_color", settings.HumanColor),
		zap.Int("difficulty", int(settings.Difficulty)),
	)
	game.Start()
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn model.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if !game.Connect(playerID, conn) {
		gm.logger.Info("rejected duplicate connection",
			zap.String("game_id", gameID), zap.String("player_id", playerID))
	}
	return nil
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string, conn model.Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.Disconnect(playerID, conn)
}
