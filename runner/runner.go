// Package runner drives the game core at a fixed real-time interval:
// drain input, tick, record stats, play cues, render.
package runner

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/status"
	"github.com/lixenwraith/gridsnake/terminal"
)

// Source supplies the input observed since the previous tick
type Source interface {
	Drain() terminal.Batch
}

// Display draws one frame
type Display interface {
	Draw(cells *[parameter.BoardCells]grid.CellKind, status string)
}

// Sound plays event cues; implementations must tolerate being disabled
type Sound interface {
	Eat()
	Over()
}

// Options tune a Runner
type Options struct {
	Interval time.Duration
	// Verify checks board invariants after every tick; O(BoardCells) per tick
	Verify bool
}

// Result summarizes a finished game
type Result struct {
	Phase  engine.Phase
	Moves  int
	Length int
	Ticks  int64
	Quit   bool // ended by the player rather than by the game
}

// Runner owns the loop; the game state is only touched from Run/Step
type Runner struct {
	state   *engine.GameState
	input   Source
	display Display
	sound   Sound
	opts    Options

	// Cached metric pointers, written every tick
	ticks *atomic.Int64
	moves *atomic.Int64
	food  *atomic.Int64
	phase *status.AtomicString
}

func New(state *engine.GameState, input Source, display Display, sound Sound, stats *status.Registry, opts Options) *Runner {
	if opts.Interval <= 0 {
		opts.Interval = parameter.TickInterval
	}
	r := &Runner{
		state:   state,
		input:   input,
		display: display,
		sound:   sound,
		opts:    opts,
		ticks:   stats.Ints.Get(status.KeyTicks),
		moves:   stats.Ints.Get(status.KeyMoves),
		food:    stats.Ints.Get(status.KeyFood),
		phase:   stats.Strings.Get(status.KeyPhase),
	}
	r.phase.Store(state.Phase().String())
	return r
}

// Run renders the initial board and ticks until the game is over, the player quits,
// or ctx is cancelled. Cancellation returns ctx.Err() with the partial result
func (r *Runner) Run(ctx context.Context) (Result, error) {
	r.render()

	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return r.result(false), ctx.Err()

		case <-ticker.C:
			batch := r.input.Drain()
			if batch.Quit {
				log.Printf("player quit after %d moves", r.state.Moves())
				return r.result(true), nil
			}

			phase, err := r.Step(batch.Direction)
			if err != nil {
				return r.result(false), err
			}
			if phase == engine.PhaseOver {
				return r.result(false), nil
			}
		}
	}
}

// Step performs one tick with the collapsed direction and renders the outcome
func (r *Runner) Step(dir grid.Direction) (engine.Phase, error) {
	prevPhase := r.state.Phase()
	prevLen := r.state.Len()

	phase := r.state.Tick(dir)
	r.ticks.Add(1)

	if r.opts.Verify {
		if err := r.state.Verify(); err != nil {
			return phase, fmt.Errorf("board invariant violated at tick %d: %w", r.ticks.Load(), err)
		}
	}

	r.moves.Store(int64(r.state.Moves()))
	if r.state.Len() > prevLen {
		r.food.Add(1)
		r.sound.Eat()
		log.Printf("food eaten at %v, length %d, next food %v", r.state.Head(), r.state.Len(), r.state.Food())
	}

	r.phase.Store(phase.String())
	if phase != prevPhase {
		log.Printf("phase %v -> %v at tick %d (direction %v)", prevPhase, phase, r.ticks.Load(), r.state.Direction())
	}
	if phase == engine.PhaseOver {
		r.sound.Over()
	}

	r.render()
	return phase, nil
}

func (r *Runner) render() {
	cells := r.state.Cells()
	line := fmt.Sprintf("%-7s moves %d  length %d  food %d",
		r.phase.Load(), r.moves.Load(), r.state.Len(), r.food.Load())
	r.display.Draw(&cells, line)
}

func (r *Runner) result(quit bool) Result {
	return Result{
		Phase:  r.state.Phase(),
		Moves:  r.state.Moves(),
		Length: r.state.Len(),
		Ticks:  r.ticks.Load(),
		Quit:   quit,
	}
}
