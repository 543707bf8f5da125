package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/parameter"
)

// EventSource yields terminal events; PollEvent returns nil once the source is closed
type EventSource interface {
	PollEvent() tcell.Event
}

// Batch is everything observed since the previous drain
type Batch struct {
	Direction grid.Direction // last direction key, DirNone if none
	Quit      bool
	Resized   bool
	Events    int
}

// Input pumps events from a source into a bounded queue read once per tick
type Input struct {
	events chan tcell.Event
}

// NewInput creates an input queue; call Run (usually via Screen.Go) to start pumping
func NewInput() *Input {
	return &Input{
		events: make(chan tcell.Event, parameter.InputQueueSize),
	}
}

// Run blocks pumping src into the queue until src is closed
// Events arriving while the queue is full are dropped
func (in *Input) Run(src EventSource) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		default:
		}
	}
}

// Drain consumes all queued events without blocking and collapses them
func (in *Input) Drain() Batch {
	var b Batch
	for {
		select {
		case ev := <-in.events:
			b.add(ev)
		default:
			return b
		}
	}
}

// Collapse folds a sequence of events the same way Drain does
func Collapse(events []tcell.Event) Batch {
	var b Batch
	for _, ev := range events {
		b.add(ev)
	}
	return b
}

func (b *Batch) add(ev tcell.Event) {
	b.Events++
	switch ev := ev.(type) {
	case *tcell.EventKey:
		dir, quit := Classify(ev.Key(), ev.Rune())
		if quit {
			b.Quit = true
		}
		if dir != grid.DirNone {
			b.Direction = dir
		}
	case *tcell.EventResize:
		b.Resized = true
	}
}

// Classify maps a key press to a direction or a quit request
// Arrows, vi keys (hjkl) and wasd steer; Esc, Ctrl-C and q quit
func Classify(key tcell.Key, r rune) (grid.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return grid.DirUp, false
	case tcell.KeyDown:
		return grid.DirDown, false
	case tcell.KeyLeft:
		return grid.DirLeft, false
	case tcell.KeyRight:
		return grid.DirRight, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return grid.DirNone, true
	case tcell.KeyRune:
	default:
		return grid.DirNone, false
	}

	switch r {
	case 'k', 'K', 'w', 'W':
		return grid.DirUp, false
	case 'j', 'J', 's', 'S':
		return grid.DirDown, false
	case 'h', 'H', 'a', 'A':
		return grid.DirLeft, false
	case 'l', 'L', 'd', 'D':
		return grid.DirRight, false
	case 'q', 'Q':
		return grid.DirNone, true
	}
	return grid.DirNone, false
}
