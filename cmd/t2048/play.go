package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in this terminal",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Mouse drag       - Swipe in the drag direction
  P/Esc            - Pause
  R/N              - Restart
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Log to a file so the alt screen stays clean
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "play")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := resolveSeed()
	cfg := appConfig.Runtime(width, height, seed)

	game, err := registry.Create(t2048.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := openStore()
	if err != nil {
		logger.Warn("scores disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	sessionID := uuid.NewString()
	logger.Info("game started", "session", sessionID, "seed", seed, "config", appConfig.Source)

	runErr := tui.Run(game, store, cfg, tui.Options{
		SessionID:      sessionID,
		SwipeThreshold: appConfig.Input.SwipeThreshold,
		ScreenshotDir:  filepath.Join(config.DataDir(), "screenshots"),
		Logger:         logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
