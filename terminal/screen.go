package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen owns the tcell screen for the lifetime of a game
type Screen struct {
	tcell.Screen
	once sync.Once
}

// Open enters raw mode on the controlling terminal and hides the cursor
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return Wrap(s), nil
}

// Wrap adopts an already initialized screen, e.g. a simulation screen in tests
func Wrap(s tcell.Screen) *Screen {
	s.HideCursor()
	s.Clear()
	return &Screen{Screen: s}
}

// Close restores the terminal. Safe to call multiple times
func (s *Screen) Close() {
	s.once.Do(s.Screen.Fini)
}

// Recover must be deferred directly; on panic it restores the terminal,
// prints the stack trace and exits
func (s *Screen) Recover() {
	if r := recover(); r != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "\x1b[31mGRIDSNAKE CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash never leaves the terminal raw
func (s *Screen) Go(fn func()) {
	go func() {
		defer s.Recover()
		fn()
	}()
}
