package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"lukechampine.com/frand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Optional game capabilities the model uses when present.
type (
	resizer   interface{ Resize(w, h int) }
	boardArea interface{ BoardRect() core.Rect }
)

// Options tune a Model beyond the runtime config.
type Options struct {
	SessionID      string      // Recorded with saved scores
	SwipeThreshold int         // Minimum mouse drag in cells
	ScreenshotDir  string      // Where ctrl+s writes screen dumps
	Logger         *log.Logger // Nil discards log output
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	help       help.Model
	swipe      *SwipeTracker
	inputFrame core.InputFrame
	pending    []core.Action // Inputs not yet played, oldest first
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// RandomSeed returns a non-zero seed from a CSPRNG.
func RandomSeed() int64 {
	return int64(frand.Uint64n(math.MaxInt64-1)) + 1
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom screen row is kept for the help line.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = RandomSeed()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = 2
	}

	cfg.ScreenH = max(cfg.ScreenH-1, 1)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		help:       h,
		swipe:      &SwipeTracker{Threshold: opts.SwipeThreshold},
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.updateSwipeArea()
	m.opts.Logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action, ok := m.swipe.Handle(msg); ok {
			m.enqueue(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.enqueue(action)

	return m, nil
}

// enqueue records an input for a later tick. Inputs play one per tick in
// arrival order, so presses that land between two ticks are not lost.
func (m *Model) enqueue(action core.Action) {
	if action != core.ActionNone {
		m.pending = append(m.pending, action)
	}
}

// handleResize processes window resize events. Games that can resize keep
// their board; others are restarted at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-1, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.updateSwipeArea()

	return m, nil
}

func (m Model) updateSwipeArea() {
	if b, ok := m.game.(boardArea); ok {
		m.swipe.Area = b.BoardRect()
	} else {
		m.swipe.Area = core.NewRect(0, 0, m.config.ScreenW, m.config.ScreenH)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if len(m.pending) > 0 {
		m.inputFrame.Set(m.pending[0])
		m.pending = m.pending[1:]
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveScore() {
	st := m.gameState
	m.opts.Logger.Info("game over", "session", m.opts.SessionID, "score", st.Score, "max_tile", st.MaxTile)

	if m.store == nil || st.Score == 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:    m.game.ID(),
		SessionID: m.opts.SessionID,
		Score:     st.Score,
		MaxTile:   st.MaxTile,
	})
	if err != nil {
		m.opts.Logger.Error("save score", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() error {
	if m.opts.ScreenshotDir == "" {
		return fmt.Errorf("tui: no screenshot directory configured")
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: write screenshot: %w", err)
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
