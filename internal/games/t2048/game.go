package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// GameID is the registry and score storage key.
const GameID = "2048"

// Minimum screen size: board plus HUD and progress bar.
const (
	minScreenW = boardW + 4
	minScreenH = hudHeight + boardH + 3
)

// Game adapts the Engine to the fixed-tick platform loop: it turns input
// frames into moves and drives the slide and pop animations.
type Game struct {
	engine *Engine
	rng    *rand.Rand
	tick   uint64

	// Screen dimensions
	screenW int
	screenH int

	anim animation

	paused   bool
	tooSmall bool
}

// New creates a 2048 game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new game seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(g.rng)
	g.tick = 0
	g.paused = false
	g.anim = newAnimation(cfg.SlideTicks, cfg.PopTicks)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick. At most one move is played per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Restart also works while paused and resumes play.
	if in.Has(core.ActionRestart) {
		g.engine.Reset()
		g.anim.stop()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		g.anim.advance()
		return core.StepResult{State: g.State()}
	}

	// A new move finishes whatever is still animating.
	g.anim.stop()

	turn := g.engine.Move(dir)
	if turn.Accepted {
		g.anim.start(turn, g.engine.Board())
	}

	return core.StepResult{State: g.State(), Moved: turn.Accepted}
}

// directionFor picks the move requested by the frame, if any.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		MaxTile:  g.engine.MaxTile(),
		GameOver: g.engine.Terminal(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Animating reports whether a slide or pop is in progress.
func (g *Game) Animating() bool {
	return g.anim.active()
}
