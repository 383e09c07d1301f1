package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Board    [BoardSize][BoardSize]int
	IDs      [BoardSize][BoardSize]uint64 // Tile IDs; 0 also for empty cells
	MaxTile  int
	Progress int // Unclamped percentage of GoalTile
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.Terminal():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	board := g.engine.Board()
	var ids [BoardSize][BoardSize]uint64
	for r := range BoardSize {
		for c := range BoardSize {
			ids[r][c] = board[r][c].ID
		}
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.engine.Score(),
		Board:    board.Values(),
		IDs:      ids,
		MaxTile:  board.MaxTile(),
		Progress: g.engine.Progress(),
		State:    state,
	}
}
