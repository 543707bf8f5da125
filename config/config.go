// Package config resolves command-line flags into a validated run configuration
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/gridsnake/parameter"
)

// Config is the full set of user-tunable settings for one run
type Config struct {
	TickInterval time.Duration
	Seed         uint64 // 0 selects a time-based seed
	Sound        bool
	Debug        bool

	SnakeGlyph string
	FoodGlyph  string
	EmptyGlyph string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		TickInterval: parameter.TickInterval,
		Sound:        true,
		SnakeGlyph:   string(rune(parameter.GlyphSnake)),
		FoodGlyph:    string(rune(parameter.GlyphFood)),
		EmptyGlyph:   string(rune(parameter.GlyphEmpty)),
	}
}

// Parse reads flags from args (without the program name) and validates the result
// Usage and parse errors are written to output
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Interval between game ticks")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed, 0 for time-based")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play audio cues")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write a debug log under logs/ and verify board invariants every tick")
	fs.StringVar(&cfg.SnakeGlyph, "glyph-snake", cfg.SnakeGlyph, "Character drawn for the snake body")
	fs.StringVar(&cfg.FoodGlyph, "glyph-food", cfg.FoodGlyph, "Character drawn for food")
	fs.StringVar(&cfg.EmptyGlyph, "glyph-empty", cfg.EmptyGlyph, "Character drawn for empty tiles")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game loop cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.TickInterval < parameter.MinTickInterval {
		errs = append(errs, fmt.Errorf("tick interval %v below minimum %v", c.TickInterval, parameter.MinTickInterval))
	}
	for _, g := range []struct{ name, val string }{
		{"glyph-snake", c.SnakeGlyph},
		{"glyph-food", c.FoodGlyph},
		{"glyph-empty", c.EmptyGlyph},
	} {
		if utf8.RuneCountInString(g.val) != 1 {
			errs = append(errs, fmt.Errorf("%s must be a single character, got %q", g.name, g.val))
		}
	}
	return errors.Join(errs...)
}

// Glyph returns the single rune of a validated glyph setting
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
