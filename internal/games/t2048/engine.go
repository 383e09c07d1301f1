package t2048

import "fmt"

// Engine owns one game session: the board, the cumulative score, the terminal
// flag and the tile ID counter. It is not safe for concurrent use.
type Engine struct {
	rng      RandomSource
	ids      TileIDs
	board    Board
	score    int
	terminal bool
}

// TurnResult describes what a single Move did.
type TurnResult struct {
	Accepted   bool // The board changed and a tile was spawned
	ScoreDelta int
	Moves      []TileMove // Per-tile movement of the slide, for animation
	Spawned    Pos        // Cell of the new tile when Accepted
	SpawnedID  uint64
	Terminal   bool // Terminal flag after the turn
}

// NewEngine creates an engine with a fresh game.
func NewEngine(rng RandomSource) *Engine {
	e := &Engine{rng: rng}
	e.Reset()
	return e
}

// NewEngineFromValues creates an engine positioned on the given values with
// the given score. Tiles get IDs in row-major order. It panics if the values
// do not form a valid board or the score is negative.
func NewEngineFromValues(values [BoardSize][BoardSize]int, score int, rng RandomSource) *Engine {
	if score < 0 {
		panic(fmt.Sprintf("t2048: negative score %d", score))
	}
	e := &Engine{rng: rng, score: score}
	e.board = NewBoardFromValues(values, &e.ids)
	mustValidate(e.board)
	e.terminal = IsTerminal(e.board)
	return e
}

// Reset starts a new game: two 2-tiles in the first two cells of the top row,
// score 0, not terminal, tile IDs numbered from zero again.
func (e *Engine) Reset() {
	e.ids.Reset()
	e.board = Board{}
	e.board[0][0] = Tile{ID: e.ids.Next(), Value: 2}
	e.board[0][1] = Tile{ID: e.ids.Next(), Value: 2}
	e.score = 0
	e.terminal = false
}

// Move plays one turn in dir.
//
// A terminal game rejects every move. A move that leaves the layout unchanged
// is a no-op: nothing is spawned and score and terminal flag stay as they are.
// Otherwise the new board is committed, the merge score added, one random tile
// spawned and the terminal flag re-evaluated on the post-spawn board.
func (e *Engine) Move(dir Direction) TurnResult {
	if e.terminal {
		return TurnResult{Terminal: true}
	}

	res := Slide(e.board, dir)
	if !res.Changed {
		return TurnResult{}
	}

	e.board = res.Board
	e.score += res.Score

	board, at, ok := SpawnRandomTile(e.board, e.rng, &e.ids)
	if !ok {
		// A changed slide always frees or keeps at least one cell.
		panic("t2048: no empty cell after a changing move")
	}
	e.board = board
	mustValidate(e.board)

	if IsTerminal(e.board) {
		e.terminal = true
	}

	return TurnResult{
		Accepted:   true,
		ScoreDelta: res.Score,
		Moves:      res.Moves,
		Spawned:    at,
		SpawnedID:  e.board[at.Row][at.Col].ID,
		Terminal:   e.terminal,
	}
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board
}

// Score returns the cumulative score.
func (e *Engine) Score() int {
	return e.score
}

// Terminal reports whether no move can change the board.
func (e *Engine) Terminal() bool {
	return e.terminal
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return e.board.MaxTile()
}

// Progress returns the unclamped progress percentage toward GoalTile.
func (e *Engine) Progress() int {
	return ProgressPercent(e.board.MaxTile())
}
