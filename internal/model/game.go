package model

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/benbeisheim/chess-ai-backend/internal/engine"
	"github.com/benbeisheim/chess-ai-backend/internal/fen"
	"github.com/benbeisheim/chess-ai-backend/internal/ws"
)

var (
	ErrNotAPlayer       = errors.New("not a player in this game")
	ErrComputerThinking = errors.New("computer is thinking")
)

// Settings fix who plays what for the lifetime of a game, resets included.
type Settings struct {
	HumanColor    engine.Color
	Difficulty    engine.Difficulty
	ThinkingDelay time.Duration
}

// Scheduler runs fn once delay has passed.
type Scheduler func(delay time.Duration, fn func())

func afterFunc(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

// Options are a game's collaborators. Zero fields get production defaults.
type Options struct {
	Logger   *zap.Logger
	Schedule Scheduler
	Random   engine.Random
	Now      func() time.Time
}

// Game is one human-versus-computer session and the sockets watching it.
type Game struct {
	ID       string
	playerID string
	settings Settings

	mu       sync.Mutex
	state    engine.GameState
	thinking bool
	resigned bool
	// generation changes on reset and resign so a computer move computed
	// for an earlier position is thrown away.
	generation uint64

	whiteClock *Clock
	blackClock *Clock

	connections *GameConnections
	schedule    Scheduler
	rng         engine.Random
	logger      *zap.Logger
}

// View is the full state of a game as sent to clients.
type View struct {
	ID              string                `json:"id"`
	Board           engine.Board          `json:"board"`
	ToMove          engine.Color          `json:"toMove"`
	Status          engine.Status         `json:"status"`
	IsCheck         bool                  `json:"isCheck"`
	KingInCheck     *engine.Position      `json:"kingInCheck"`
	MoveHistory     []engine.MoveRecord   `json:"moveHistory"`
	CapturedPieces  engine.CapturedPieces `json:"capturedPieces"`
	LastMove        *engine.Move          `json:"lastMove"`
	Thinking        bool                  `json:"thinking"`
	Difficulty      engine.Difficulty     `json:"difficulty"`
	DifficultyLabel string                `json:"difficultyLabel"`
	HumanColor      engine.Color          `json:"humanColor"`
	Players         Players               `json:"players"`
	Result          *Result               `json:"result"`
	FEN             string                `json:"fen"`
}

// NewGame creates a session owned by playerID starting from state. Call Start
// once the game is reachable so the computer can open if it plays first.
func NewGame(id, playerID string, state engine.GameState, settings Settings, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Schedule == nil {
		opts.Schedule = afterFunc
	}
	if opts.Random == nil {
		opts.Random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger.With(zap.String("game_id", id))
	return &Game{
		ID:          id,
		playerID:    playerID,
		settings:    settings,
		state:       state,
		whiteClock:  NewClock(opts.Now),
		blackClock:  NewClock(opts.Now),
		connections: NewGameConnections(logger),
		schedule:    opts.Schedule,
		rng:         &lockedRandom{r: opts.Random},
		logger:      logger,
	}
}

func (g *Game) IsPlayer(playerID string) bool {
	return playerID != "" && playerID == g.playerID
}

// Start runs the clock of the side to move and, if that is the computer,
// begins its turn.
func (g *Game) Start() {
	g.mu.Lock()
	g.clockFor(g.state.ToMove).Start()
	gen, ok := g.beginComputerTurn()
	g.mu.Unlock()

	if ok {
		g.scheduleComputerTurn(gen)
	}
}

func (g *Game) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewLocked()
}

// LegalDestinations lists where the piece on from may go. It is empty when the
// game is over.
func (g *Game) LegalDestinations(from engine.Position) ([]engine.Position, error) {
	if !from.InBounds() {
		return nil, fmt.Errorf("%w: %s", engine.ErrOutOfBounds, from)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resultLocked() != nil {
		return []engine.Position{}, nil
	}
	return engine.LegalDestinations(&g.state.Board, from), nil
}

// MakeMove plays the human's move and hands the turn to the computer.
func (g *Game) MakeMove(playerID string, m engine.Move) (View, error) {
	if !g.IsPlayer(playerID) {
		return View{}, ErrNotAPlayer
	}

	g.mu.Lock()
	switch {
	case g.resultLocked() != nil:
		g.mu.Unlock()
		return View{}, engine.ErrGameOver
	case g.thinking:
		g.mu.Unlock()
		return View{}, ErrComputerThinking
	case g.state.ToMove != g.settings.HumanColor:
		g.mu.Unlock()
		return View{}, engine.ErrNotYourTurn
	}

	next, err := g.state.Play(m)
	if err != nil {
		g.mu.Unlock()
		return View{}, err
	}
	g.commit(next)
	gen, computerToMove := g.beginComputerTurn()
	view := g.viewLocked()
	g.mu.Unlock()

	g.logger.Debug("human moved", zap.Stringer("move", m), zap.Stringer("status", view.Status))
	g.broadcast(view)
	if computerToMove {
		g.scheduleComputerTurn(gen)
	}
	return view, nil
}

// Resign ends the game in the computer's favour.
func (g *Game) Resign(playerID string) (View, error) {
	if !g.IsPlayer(playerID) {
		return View{}, ErrNotAPlayer
	}

	g.mu.Lock()
	if g.resultLocked() != nil {
		g.mu.Unlock()
		return View{}, engine.ErrGameOver
	}
	g.resigned = true
	g.thinking = false
	g.generation++
	g.whiteClock.Stop()
	g.blackClock.Stop()
	view := g.viewLocked()
	g.mu.Unlock()

	g.logger.Info("human resigned")
	g.broadcast(view)
	return view, nil
}

// Reset starts over from the standard position with the same settings.
func (g *Game) Reset(playerID string) (View, error) {
	if !g.IsPlayer(playerID) {
		return View{}, ErrNotAPlayer
	}

	g.mu.Lock()
	g.state = engine.NewGameState()
	g.resigned = false
	g.thinking = false
	g.generation++
	g.whiteClock.Reset()
	g.blackClock.Reset()
	g.clockFor(g.state.ToMove).Start()
	gen, computerToMove := g.beginComputerTurn()
	view := g.viewLocked()
	g.mu.Unlock()

	g.logger.Info("game reset")
	g.broadcast(view)
	if computerToMove {
		g.scheduleComputerTurn(gen)
	}
	return view, nil
}

// Connect registers a socket and sends it the current state.
func (g *Game) Connect(playerID string, conn Conn) bool {
	if !g.connections.Add(playerID, conn) {
		return false
	}
	msg, err := ws.NewMessage(ws.MessageTypeGameState, g.View())
	if err != nil {
		g.logger.Error("encoding state", zap.Error(err))
		return true
	}
	if err := g.connections.Send(conn, msg); err != nil {
		g.logger.Warn("sending initial state", zap.String("player_id", playerID), zap.Error(err))
	}
	return true
}

func (g *Game) Disconnect(playerID string, conn Conn) {
	g.connections.Remove(playerID, conn)
}

// SendError reports err to a single socket.
func (g *Game) SendError(conn Conn, err error) {
	if werr := g.connections.Send(conn, ws.NewError(err.Error())); werr != nil {
		g.logger.Warn("sending error", zap.Error(werr))
	}
}

// commit installs next and moves the clocks along. The caller holds g.mu.
func (g *Game) commit(next engine.GameState) {
	g.clockFor(g.state.ToMove).Stop()
	g.state = next
	if !next.Status.Over() {
		g.clockFor(next.ToMove).Start()
	}
}

// beginComputerTurn marks the computer as thinking when it is its move. The
// caller holds g.mu and schedules the turn after unlocking.
func (g *Game) beginComputerTurn() (uint64, bool) {
	if g.resultLocked() != nil || g.state.ToMove == g.settings.HumanColor {
		return 0, false
	}
	g.thinking = true
	return g.generation, true
}

func (g *Game) scheduleComputerTurn(gen uint64) {
	g.schedule(g.settings.ThinkingDelay, func() { g.computerTurn(gen) })
}

func (g *Game) computerTurn(gen uint64) {
	g.mu.Lock()
	if gen != g.generation || !g.thinking {
		g.mu.Unlock()
		return
	}
	board := g.state.Board
	color := g.state.ToMove
	g.mu.Unlock()

	start := time.Now()
	m, ok := engine.SelectMove(&board, color, g.settings.Difficulty, g.rng)

	g.mu.Lock()
	if gen != g.generation {
		g.mu.Unlock()
		g.logger.Debug("discarding stale computer move", zap.Uint64("generation", gen))
		return
	}
	g.thinking = false
	if ok {
		next, err := g.state.Play(m)
		if err != nil {
			g.mu.Unlock()
			g.logger.Error("computer chose an unplayable move", zap.Stringer("move", m), zap.Error(err))
			return
		}
		g.commit(next)
	}
	view := g.viewLocked()
	g.mu.Unlock()

	g.logger.Debug("computer moved",
		zap.Stringer("move", m),
		zap.Int("difficulty", int(g.settings.Difficulty)),
		zap.Duration("took", time.Since(start)),
	)
	g.broadcast(view)
}

func (g *Game) broadcast(view View) {
	if g.connections.Len() == 0 {
		return
	}
	msg, err := ws.NewMessage(ws.MessageTypeGameState, view)
	if err != nil {
		g.logger.Error("encoding state", zap.Error(err))
		return
	}
	g.connections.Broadcast(msg)
}

func (g *Game) clockFor(c engine.Color) *Clock {
	if c == engine.White {
		return g.whiteClock
	}
	return g.blackClock
}

func (g *Game) resultLocked() *Result {
	if g.resigned {
		return &Result{Reason: ReasonResignation, Winner: g.settings.HumanColor.Opponent()}
	}
	switch g.state.Status.Kind {
	case engine.Checkmate:
		return &Result{Reason: ReasonCheckmate, Winner: g.state.Status.Color}
	case engine.Stalemate:
		return &Result{Reason: ReasonStalemate}
	}
	return nil
}

func (g *Game) viewLocked() View {
	s := g.state
	v := View{
		ID:              g.ID,
		Board:           s.Board,
		ToMove:          s.ToMove,
		Status:          s.Status,
		MoveHistory:     append([]engine.MoveRecord{}, s.History...),
		CapturedPieces:  engine.CapturedPieces{White: append([]engine.Piece{}, s.Captured.White...), Black: append([]engine.Piece{}, s.Captured.Black...)},
		Thinking:        g.thinking,
		Difficulty:      g.settings.Difficulty,
		DifficultyLabel: g.settings.Difficulty.Label(),
		HumanColor:      g.settings.HumanColor,
		Result:          g.resultLocked(),
		FEN:             fen.EncodeState(s),
	}
	if engine.IsInCheck(s.ToMove, &s.Board) {
		if king, ok := engine.FindKing(s.ToMove, &s.Board); ok {
			v.IsCheck = true
			v.KingInCheck = &king
		}
	}
	if last, ok := s.LastMove(); ok {
		v.LastMove = &last
	}

	human := ClientPlayer{Name: g.playerID, Color: g.settings.HumanColor}
	computer := ClientPlayer{Name: ComputerName, Color: g.settings.HumanColor.Opponent(), Computer: true}
	if g.settings.HumanColor == engine.White {
		v.Players = Players{White: human, Black: computer}
	} else {
		v.Players = Players{White: computer, Black: human}
	}
	v.Players.White.TimeUsed = g.whiteClock.Used().Milliseconds()
	v.Players.Black.TimeUsed = g.blackClock.Used().Milliseconds()
	return v
}

// lockedRandom lets a stale computer turn and a fresh one share a source.
type lockedRandom struct {
	mu sync.Mutex
	r  engine.Random
}

func (l *lockedRandom) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRandom) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
