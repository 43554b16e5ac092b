package model

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/benbeisheim/chess-ai-backend/internal/ws"
)

// Conn is the part of *websocket.Conn a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// GameConnections are the sockets watching one game, one per player id.
type GameConnections struct {
	mu          sync.RWMutex
	connections map[string]Conn // playerID -> connection
	// writeMu serializes writes; a websocket allows one writer at a time.
	writeMu sync.Mutex
	logger  *zap.Logger
}

func NewGameConnections(logger *zap.Logger) *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
		logger:      logger,
	}
}

// Add registers conn for playerID. A second connection for the same player is
// closed and Add reports false.
func (gc *GameConnections) Add(playerID string, conn Conn) bool {
	gc.mu.Lock()
	_, exists := gc.connections[playerID]
	if !exists {
		gc.connections[playerID] = conn
	}
	gc.mu.Unlock()

	if exists {
		gc.writeMu.Lock()
		err := conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		gc.writeMu.Unlock()
		if err != nil {
			gc.logger.Debug("close frame to duplicate connection failed", zap.String("player_id", playerID), zap.Error(err))
		}
		if err := conn.Close(); err != nil {
			gc.logger.Debug("closing duplicate connection failed", zap.String("player_id", playerID), zap.Error(err))
		}
		return false
	}
	return true
}

// Remove drops playerID's connection if it is still conn.
func (gc *GameConnections) Remove(playerID string, conn Conn) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if current, ok := gc.connections[playerID]; ok && current == conn {
		delete(gc.connections, playerID)
	}
}

func (gc *GameConnections) Len() int {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return len(gc.connections)
}

// Send writes msg to a single connection.
func (gc *GameConnections) Send(conn Conn, msg ws.Message) error {
	gc.writeMu.Lock()
	defer gc.writeMu.Unlock()
	return conn.WriteJSON(msg)
}

// Broadcast writes msg to every connection. Connections that fail are dropped.
func (gc *GameConnections) Broadcast(msg ws.Message) {
	gc.mu.RLock()
	active := make(map[string]Conn, len(gc.connections))
	for playerID, conn := range gc.connections {
		active[playerID] = conn
	}
	gc.mu.RUnlock()

	gc.writeMu.Lock()
	defer gc.writeMu.Unlock()
	for playerID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			gc.logger.Warn("dropping connection after failed write",
				zap.String("player_id", playerID), zap.Error(err))
			gc.Remove(playerID, conn)
		}
	}
}
