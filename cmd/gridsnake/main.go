package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/config"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/runner"
	"github.com/lixenwraith/gridsnake/status"
	"github.com/lixenwraith/gridsnake/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Parse("gridsnake", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 2
	}

	logFile, err := setupLogging(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	session := uuid.New()
	log.SetPrefix("[" + session.String()[:8] + "] ")

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("session %s: seed %d, tick %v, sound %t", session, seed, cfg.TickInterval, cfg.Sound)

	screen, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup; Recover runs first on panic
	defer screen.Close()
	defer screen.Recover()

	cues := audio.NewCues()
	if cfg.Sound {
		if err := cues.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio initialization failed: %v", err)
		}
	}
	defer cues.Close()

	input := terminal.NewInput()
	// Input polling stops when the screen is finalized
	screen.Go(func() { input.Run(screen) })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	glyphs := terminal.Glyphs{
		Snake: config.Glyph(cfg.SnakeGlyph),
		Food:  config.Glyph(cfg.FoodGlyph),
		Empty: config.Glyph(cfg.EmptyGlyph),
	}
	stats := status.NewRegistry()
	game := runner.New(
		engine.NewGameState(rand.New(rand.NewSource(seed))),
		input,
		terminal.NewRenderer(screen, glyphs),
		cues,
		stats,
		runner.Options{Interval: cfg.TickInterval, Verify: cfg.Debug},
	)

	res, err := game.Run(ctx)

	// Restore the terminal before printing anything
	screen.Close()

	log.Printf("session end: phase %v, stats %v", res.Phase, stats.Snapshot())
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Game aborted: %v\n", err)
		return 1
	}

	fmt.Printf("Game over after %d moves\n", res.Moves)
	return 0
}
