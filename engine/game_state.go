package engine

import (
	"fmt"

	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Phase is the result of a tick
type Phase uint8

const (
	// PhaseReady: no direction chosen yet, board untouched
	PhaseReady Phase = iota
	// PhaseRunning: the snake moved one tile
	PhaseRunning
	// PhaseOver is terminal: wall, self collision, or no room for new food
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState owns the board and both occupancy structures
// Ownership boundaries:
//   - cells: tile kind per cell index, used for O(1) collision lookup
//   - body: snake tiles, tail to head; exactly the Snake cells
//   - free: exactly the Empty cells; the single Food cell is in neither
//
// Not safe for concurrent use; the game loop is the only caller
type GameState struct {
	cells [parameter.BoardCells]grid.CellKind
	body  Ring
	free  FreeSet

	food      grid.Coord
	direction grid.Direction
	phase     Phase
	moves     int

	rng Rand
}

// NewGameState seeds a length-1 snake at the board center and places one food tile
// uniformly among the remaining free tiles
func NewGameState(rng Rand) *GameState {
	g := &GameState{rng: rng}

	for idx := 0; idx < parameter.BoardCells; idx++ {
		g.free.Insert(grid.FromIndex(idx))
	}

	spawn := grid.Coord{X: parameter.SpawnX, Y: parameter.SpawnY}
	g.pushHead(spawn)
	g.placeFood()

	return g
}

// Tick advances the game by one step and returns the resulting phase
// A non-None dir replaces the remembered direction, reversal included
// Sub-step order is fixed: tail pop, then head push, then food placement
func (g *GameState) Tick(dir grid.Direction) Phase {
	if g.phase == PhaseOver {
		return PhaseOver
	}

	if dir != grid.DirNone {
		g.direction = dir
	}
	if g.direction == grid.DirNone {
		return PhaseReady
	}

	next := g.body.Head().Step(g.direction)
	if !next.InBounds() {
		return g.over()
	}

	switch g.cells[next.Index()] {
	case grid.CellEmpty:
		g.popTail()
		g.pushHead(next)

	case grid.CellFood:
		// Growing leaves no tile for the replacement food
		if g.body.Len() >= parameter.BoardCells-1 {
			return g.over()
		}
		g.body.PushHead(next)
		g.cells[next.Index()] = grid.CellSnake
		g.placeFood()

	case grid.CellSnake:
		return g.over()

	default:
		panic(fmt.Sprintf("engine: invalid cell kind %d at %v", g.cells[next.Index()], next))
	}

	g.phase = PhaseRunning
	g.moves++
	return PhaseRunning
}

func (g *GameState) over() Phase {
	g.phase = PhaseOver
	return PhaseOver
}

// popTail vacates the tail tile and returns it to the free set
func (g *GameState) popTail() {
	tail := g.body.PopTail()
	g.cells[tail.Index()] = grid.CellEmpty
	g.free.Insert(tail)
}

// pushHead claims an Empty tile as the new head
func (g *GameState) pushHead(c grid.Coord) {
	g.free.Remove(c)
	g.body.PushHead(c)
	g.cells[c.Index()] = grid.CellSnake
}

// placeFood draws the next food tile from the current free set
func (g *GameState) placeFood() {
	c := g.free.Sample(g.rng)
	g.free.Remove(c)
	g.cells[c.Index()] = grid.CellFood
	g.food = c
}

// Cells returns a copy of the board, one kind per cell index (y*BoardSide + x)
func (g *GameState) Cells() [parameter.BoardCells]grid.CellKind {
	return g.cells
}

// CellAt returns the kind of an on-board tile
func (g *GameState) CellAt(c grid.Coord) grid.CellKind {
	return g.cells[c.Index()]
}

// Moves counts ticks that returned PhaseRunning
func (g *GameState) Moves() int {
	return g.moves
}

// Phase returns the phase of the last tick; PhaseReady before any move
func (g *GameState) Phase() Phase {
	return g.phase
}

func (g *GameState) Len() int {
	return g.body.Len()
}

func (g *GameState) Head() grid.Coord {
	return g.body.Head()
}

func (g *GameState) Food() grid.Coord {
	return g.food
}

func (g *GameState) Direction() grid.Direction {
	return g.direction
}

// FreeCount returns the number of Empty tiles
func (g *GameState) FreeCount() int {
	return g.free.Len()
}

// Body visits the snake tiles from tail to head
func (g *GameState) Body(fn func(i int, c grid.Coord) bool) {
	g.body.Each(fn)
}

// Verify checks the occupancy invariants in O(BoardCells)
// Returns the first violation found, nil when consistent
func (g *GameState) Verify() error {
	var inBody [parameter.BoardCells]bool
	var err error
	g.body.Each(func(i int, c grid.Coord) bool {
		if !c.InBounds() {
			err = fmt.Errorf("body[%d] %v off board", i, c)
			return false
		}
		if inBody[c.Index()] {
			err = fmt.Errorf("body[%d] %v duplicated", i, c)
			return false
		}
		inBody[c.Index()] = true
		if i > 0 && !grid.Adjacent(g.body.At(i-1), c) {
			err = fmt.Errorf("body[%d] %v not adjacent to %v", i, c, g.body.At(i-1))
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	foods := 0
	for idx, kind := range g.cells {
		c := grid.FromIndex(idx)
		if (kind == grid.CellSnake) != inBody[idx] {
			return fmt.Errorf("cell %v is %v but body membership is %t", c, kind, inBody[idx])
		}
		if (kind == grid.CellEmpty) != g.free.Contains(c) {
			return fmt.Errorf("cell %v is %v but free membership is %t", c, kind, g.free.Contains(c))
		}
		if kind == grid.CellFood {
			foods++
			if c != g.food {
				return fmt.Errorf("food at %v but tracked at %v", c, g.food)
			}
		}
	}
	if foods > 1 {
		return fmt.Errorf("%d food cells", foods)
	}
	if g.body.Len()+g.free.Len()+foods != parameter.BoardCells {
		return fmt.Errorf("partition mismatch: body %d + free %d + food %d != %d",
			g.body.Len(), g.free.Len(), foods, parameter.BoardCells)
	}
	return nil
}
