// Package mcp exposes a 2048 game as Model Context Protocol tools so an
// agent can play over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Server owns one game and serializes every tool call against it.
type Server struct {
	mu        sync.Mutex
	engine    *t2048.Engine
	sessionID string
	moves     int
	saved     bool

	store     *storage.Store
	logger    *log.Logger
	mcpServer *server.MCPServer
}

// TileView is one occupied cell.
type TileView struct {
	ID    uint64 `json:"id"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value int    `json:"value"`
}

// StateView is the game state returned by every tool.
type StateView struct {
	SessionID string                                `json:"session_id"`
	Board     [t2048.BoardSize][t2048.BoardSize]int `json:"board"`
	Tiles     []TileView                            `json:"tiles"`
	Score     int                                   `json:"score"`
	MaxTile   int                                   `json:"max_tile"`
	Best      int                                   `json:"best"`     // Best recorded score, 0 without a store
	Progress  int                                   `json:"progress"` // Clamped to 100
	Terminal  bool                                  `json:"terminal"`
	Moves     int                                   `json:"moves"`
}

// MoveView is the result of the move tool.
type MoveView struct {
	Direction  string    `json:"direction"`
	Changed    bool      `json:"changed"`
	ScoreDelta int       `json:"score_delta"`
	Spawned    *TileView `json:"spawned,omitempty"`
	State      StateView `json:"state"`
}

// NewServer creates a server with a fresh game. store and logger may be nil.
func NewServer(seed int64, store *storage.Store, logger *log.Logger) *Server {
	return newServer(t2048.NewEngine(rand.New(rand.NewSource(seed))), store, logger)
}

func newServer(engine *t2048.Engine, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		engine:    engine,
		sessionID: uuid.NewString(),
		store:     store,
		logger:    logger,
	}
	s.initMCPServer()
	return s
}

func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"t2048",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`2048 - slide numbered tiles on a 4x4 board.

Each move slides every tile as far as possible in one direction. Two tiles
with the same value that collide merge into one tile of double value, and the
merged value is added to the score. A tile merges at most once per move.
After every move that changes the board a new 2 (90%) or 4 (10%) appears in a
random empty cell. The game ends when no move can change the board.
Reach the 2048 tile for 100% progress.

TOOLS:
- state: current board, score and progress
- move: slide in a direction (up/down/left/right)
- new_game: start over`),
	)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a new game. The current game is discarded.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleNewGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide all tiles in a direction. A move that changes nothing is ignored.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to slide",
				},
			},
			Required: []string{"direction"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "state",
		Description: "Get the current board, score and progress",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleState)
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP on stdio", "session", s.sessionID)
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("mcp: serve stdio: %w", err)
	}
	return nil
}

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Reset()
	s.sessionID = uuid.NewString()
	s.moves = 0
	s.saved = false
	s.logger.Info("new game", "session", s.sessionID)

	return s.result("New game started.", s.stateLocked())
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	direction, _ := args["direction"].(string)

	dir, err := t2048.ParseDirection(direction)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.Terminal() {
		return mcp.NewToolResultError("game over: call new_game to play again"), nil
	}

	turn := s.engine.Move(dir)
	view := MoveView{
		Direction:  dir.String(),
		Changed:    turn.Accepted,
		ScoreDelta: turn.ScoreDelta,
	}

	summary := fmt.Sprintf("Moved %s.", dir)
	if turn.Accepted {
		s.moves++
		tile := s.engine.Board().At(turn.Spawned)
		view.Spawned = &TileView{ID: tile.ID, Row: turn.Spawned.Row, Col: turn.Spawned.Col, Value: tile.Value}
		if turn.ScoreDelta > 0 {
			summary = fmt.Sprintf("Moved %s, merged for +%d.", dir, turn.ScoreDelta)
		}
	} else {
		summary = fmt.Sprintf("Nothing moves %s; board unchanged.", dir)
	}

	if turn.Terminal {
		summary += " No moves left: game over."
		s.saveScoreLocked()
	}

	view.State = s.stateLocked()
	return s.result(summary, view)
}

func (s *Server) handleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result("Current game.", s.stateLocked())
}

// State returns a snapshot of the current game.
func (s *Server) State() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Server) stateLocked() StateView {
	board := s.engine.Board()

	tiles := make([]TileView, 0, t2048.BoardSize*t2048.BoardSize)
	for r := range t2048.BoardSize {
		for c := range t2048.BoardSize {
			if t := board[r][c]; !t.Empty() {
				tiles = append(tiles, TileView{ID: t.ID, Row: r, Col: c, Value: t.Value})
			}
		}
	}

	best := 0
	if s.store != nil {
		if score, err := s.store.HighScore(t2048.GameID); err == nil {
			best = score
		} else {
			s.logger.Warn("read high score", "err", err)
		}
	}

	return StateView{
		SessionID: s.sessionID,
		Board:     board.Values(),
		Tiles:     tiles,
		Score:     s.engine.Score(),
		MaxTile:   s.engine.MaxTile(),
		Best:      best,
		Progress:  t2048.DisplayProgress(s.engine.Progress()),
		Terminal:  s.engine.Terminal(),
		Moves:     s.moves,
	}
}

func (s *Server) saveScoreLocked() {
	if s.saved {
		return
	}
	s.saved = true
	s.logger.Info("game over", "session", s.sessionID, "score", s.engine.Score(), "max_tile", s.engine.MaxTile())

	if s.store == nil || s.engine.Score() == 0 {
		return
	}
	_, err := s.store.SaveScore(storage.ScoreEntry{
		GameID:    t2048.GameID,
		SessionID: s.sessionID,
		Score:     s.engine.Score(),
		MaxTile:   s.engine.MaxTile(),
	})
	if err != nil {
		s.logger.Error("save score", "err", err)
	}
}

// result renders a summary, the board as text, and the JSON payload.
func (s *Server) result(summary string, payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mcp: encode result: %w", err)
	}

	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")
	b.WriteString(s.engine.Board().String())
	fmt.Fprintf(&b, "Score: %d  Max: %d  Progress: %d%%\n\n",
		s.engine.Score(), s.engine.MaxTile(), t2048.DisplayProgress(s.engine.Progress()))
	b.Write(data)

	return mcp.NewToolResultText(b.String()), nil
}
