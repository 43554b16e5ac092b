package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chess-ai-backend/internal/middleware"
)

// SetupRoutes mounts the REST and websocket endpoints on app.
func SetupRoutes(app *fiber.App, gc *GameController, wsc *WebSocketController, allowOrigins []string) {
	app.Get("/healthz", gc.Health)

	app.Get("/ws/game/:gameId", middleware.EnsurePlayerID(), middleware.WebSocketUpgrade(), websocket.New(wsc.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         allowOrigins,
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gc.CreateGame)
	gameRoutes.Get("/:gameId", gc.GetGameState)
	gameRoutes.Get("/:gameId/moves", gc.LegalMoves)
	gameRoutes.Post("/:gameId/move", gc.MakeMove)
	gameRoutes.Post("/:gameId/resign", gc.Resign)
	gameRoutes.Post("/:gameId/reset", gc.Reset)
}
