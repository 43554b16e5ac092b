package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/benbeisheim/chess-ai-backend/internal/engine"
	"github.com/benbeisheim/chess-ai-backend/internal/fen"
	"github.com/benbeisheim/chess-ai-backend/internal/middleware"
	"github.com/benbeisheim/chess-ai-backend/internal/model"
	"github.com/benbeisheim/chess-ai-backend/internal/service"
)

type GameController struct {
	gameService *service.GameService
	logger      *zap.Logger
}

func NewGameController(gameService *service.GameService, logger *zap.Logger) *GameController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameController{gameService: gameService, logger: logger}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req service.CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	res, err := gc.gameService.CreateGame(middleware.PlayerID(c), req)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	view, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(view)
}

// LegalMoves answers GET /:gameId/moves?from=e2.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	from, err := engine.ParseSquare(c.Query("from"))
	if err != nil {
		return gc.fail(c, err)
	}
	dests, err := gc.gameService.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"from":         from,
		"destinations": dests,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req model.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid move body")
	}
	view, err := gc.gameService.HandleMove(c.Params("gameId"), middleware.PlayerID(c), req)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) Resign(c *fiber.Ctx) error {
	view, err := gc.gameService.Resign(c.Params("gameId"), middleware.PlayerID(c))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) Reset(c *fiber.Ctx) error {
	view, err := gc.gameService.Reset(c.Params("gameId"), middleware.PlayerID(c))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"games":  gc.gameService.GameCount(),
	})
}

func (gc *GameController) fail(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status == fiber.StatusInternalServerError {
		gc.logger.Error("request failed", zap.String("path", utils.CopyString(c.Path())), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotAPlayer):
		return fiber.StatusForbidden
	case errors.Is(err, engine.ErrNotYourTurn),
		errors.Is(err, engine.ErrGameOver),
		errors.Is(err, service.ErrComputerThinking):
		return fiber.StatusConflict
	case errors.Is(err, engine.ErrInvalidColor),
		errors.Is(err, engine.ErrInvalidDifficulty),
		errors.Is(err, fen.ErrInvalidFEN),
		errors.Is(err, engine.ErrMissingKing),
		errors.Is(err, engine.ErrOpponentInCheck),
		errors.Is(err, engine.ErrOutOfBounds),
		errors.Is(err, engine.ErrNoPiece),
		errors.Is(err, engine.ErrIllegalMove):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
