package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/parameter"
)

var allDirections = []grid.Direction{grid.DirNone, grid.DirUp, grid.DirDown, grid.DirLeft, grid.DirRight}

// newFromLayout builds a running state with the given body (tail first) and food tile
func newFromLayout(t *testing.T, rng Rand, body []grid.Coord, food grid.Coord) *GameState {
	t.Helper()
	g := &GameState{rng: rng}
	for idx := 0; idx < parameter.BoardCells; idx++ {
		g.free.Insert(grid.FromIndex(idx))
	}
	for _, c := range body {
		g.pushHead(c)
	}
	g.free.Remove(food)
	g.cells[food.Index()] = grid.CellFood
	g.food = food
	require.NoError(t, g.Verify())
	return g
}

// serpentine returns the first n tiles of a boustrophedon walk starting at (0,0)
func serpentine(n int) []grid.Coord {
	path := make([]grid.Coord, 0, n)
	for y := 0; y < parameter.BoardSide && len(path) < n; y++ {
		for i := 0; i < parameter.BoardSide && len(path) < n; i++ {
			x := i
			if y%2 == 1 {
				x = parameter.BoardSide - 1 - i
			}
			path = append(path, grid.Coord{X: int8(x), Y: int8(y)})
		}
	}
	return path
}

// TestNewGameState verifies the seeded layout
func TestNewGameState(t *testing.T) {
	g := NewGameState(fixedRand(0))

	require.NoError(t, g.Verify())
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, grid.Coord{X: parameter.SpawnX, Y: parameter.SpawnY}, g.Head())
	assert.Equal(t, grid.CellSnake, g.CellAt(g.Head()))
	assert.Equal(t, grid.Coord{X: 0, Y: 0}, g.Food())
	assert.Equal(t, grid.CellFood, g.CellAt(g.Food()))
	assert.Equal(t, parameter.BoardCells-2, g.FreeCount())
	assert.Equal(t, PhaseReady, g.Phase())
	assert.Equal(t, grid.DirNone, g.Direction())
	assert.Equal(t, 0, g.Moves())
}

// TestNewGameStateFoodNeverOnSnake seeds many games and checks food placement
func TestNewGameStateFoodNeverOnSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[grid.Coord]bool)
	for i := 0; i < 2000; i++ {
		g := NewGameState(rng)
		require.NotEqual(t, g.Head(), g.Food())
		require.NoError(t, g.Verify())
		seen[g.Food()] = true
	}
	// Uniform placement over 255 tiles reaches most of them in 2000 draws
	assert.Greater(t, len(seen), 200)
}

// TestTickPauseIsIdempotent verifies None before any input never mutates the board
func TestTickPauseIsIdempotent(t *testing.T) {
	g := NewGameState(rand.New(rand.NewSource(1)))
	before := g.Cells()
	food := g.Food()

	for i := 0; i < 50; i++ {
		assert.Equal(t, PhaseReady, g.Tick(grid.DirNone))
	}

	assert.Equal(t, before, g.Cells())
	assert.Equal(t, food, g.Food())
	assert.Equal(t, 0, g.Moves())
	assert.Equal(t, PhaseReady, g.Phase())
}

// TestTickMoveRightFive is the straight-line scenario on the 16x16 board
func TestTickMoveRightFive(t *testing.T) {
	g := NewGameState(fixedRand(0))
	require.Equal(t, grid.Coord{X: 8, Y: 8}, g.Head())
	require.Equal(t, grid.Coord{X: 0, Y: 0}, g.Food())

	for i := 0; i < 5; i++ {
		assert.Equal(t, PhaseRunning, g.Tick(grid.DirRight), "tick %d", i)
		require.NoError(t, g.Verify())
	}

	assert.Equal(t, grid.Coord{X: 13, Y: 8}, g.Head())
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 5, g.Moves())
	assert.Equal(t, grid.CellEmpty, g.CellAt(grid.Coord{X: 8, Y: 8}))
}

// TestTickKeepsDirection verifies None continues the remembered direction
func TestTickKeepsDirection(t *testing.T) {
	g := NewGameState(fixedRand(0))
	g.Tick(grid.DirDown)
	assert.Equal(t, PhaseRunning, g.Tick(grid.DirNone))
	assert.Equal(t, grid.Coord{X: 8, Y: 10}, g.Head())
	assert.Equal(t, grid.DirDown, g.Direction())
}

// TestTickReversalAccepted verifies the opposite direction overwrites the current one
func TestTickReversalAccepted(t *testing.T) {
	g := NewGameState(fixedRand(0))
	require.Equal(t, PhaseRunning, g.Tick(grid.DirRight))
	require.Equal(t, grid.Coord{X: 9, Y: 8}, g.Head())

	// Length 1: the reversed candidate is the tile just vacated
	assert.Equal(t, PhaseRunning, g.Tick(grid.DirLeft))
	assert.Equal(t, grid.DirLeft, g.Direction())
	assert.Equal(t, grid.Coord{X: 8, Y: 8}, g.Head())
	require.NoError(t, g.Verify())
}

// TestTickReversalIntoNeck verifies reversal is not special-cased for longer snakes
func TestTickReversalIntoNeck(t *testing.T) {
	body := []grid.Coord{{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4}}
	g := newFromLayout(t, fixedRand(0), body, grid.Coord{X: 0, Y: 15})
	require.Equal(t, PhaseRunning, g.Tick(grid.DirRight))

	before := g.Cells()
	assert.Equal(t, PhaseOver, g.Tick(grid.DirLeft))
	assert.Equal(t, grid.DirLeft, g.Direction())
	assert.Equal(t, before, g.Cells())
}

// TestTickWallIsOver walks up until the board edge
func TestTickWallIsOver(t *testing.T) {
	g := NewGameState(fixedRand(0))
	for i := 0; i < parameter.SpawnY; i++ {
		require.Equal(t, PhaseRunning, g.Tick(grid.DirUp), "tick %d", i)
	}
	require.Equal(t, int8(0), g.Head().Y)

	before := g.Cells()
	assert.Equal(t, PhaseOver, g.Tick(grid.DirUp))
	assert.Equal(t, before, g.Cells())
	assert.Equal(t, parameter.SpawnY, g.Moves())
	require.NoError(t, g.Verify())
}

// TestTickEachWall verifies all four edges end the game without wraparound
func TestTickEachWall(t *testing.T) {
	cases := []struct {
		dir   grid.Direction
		steps int
	}{
		{grid.DirUp, parameter.SpawnY},
		{grid.DirDown, parameter.BoardSide - 1 - parameter.SpawnY},
		{grid.DirLeft, parameter.SpawnX},
		{grid.DirRight, parameter.BoardSide - 1 - parameter.SpawnX},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			// Food off every straight path from the spawn tile
			g := newFromLayout(t, fixedRand(0),
				[]grid.Coord{{X: parameter.SpawnX, Y: parameter.SpawnY}},
				grid.Coord{X: 1, Y: 2})
			for i := 0; i < tc.steps; i++ {
				require.Equal(t, PhaseRunning, g.Tick(tc.dir))
			}
			assert.Equal(t, PhaseOver, g.Tick(tc.dir))
			assert.True(t, g.Head().InBounds())
		})
	}
}

// TestTickSelfCollision steers the head into its own body
func TestTickSelfCollision(t *testing.T) {
	body := []grid.Coord{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5}, {X: 7, Y: 6}, {X: 6, Y: 6}}
	g := newFromLayout(t, fixedRand(0), body, grid.Coord{X: 0, Y: 0})

	before := g.Cells()
	assert.Equal(t, PhaseOver, g.Tick(grid.DirUp))
	assert.Equal(t, before, g.Cells())
	assert.Equal(t, 5, g.Len())
	assert.Equal(t, 0, g.Moves())
}

// TestTickIntoTailIsOver documents that the tail tile still counts as Snake on dispatch
func TestTickIntoTailIsOver(t *testing.T) {
	body := []grid.Coord{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	g := newFromLayout(t, fixedRand(0), body, grid.Coord{X: 0, Y: 0})
	assert.Equal(t, PhaseOver, g.Tick(grid.DirUp))
}

// TestTickEatGrows verifies the growth law
func TestTickEatGrows(t *testing.T) {
	g := newFromLayout(t, rand.New(rand.NewSource(9)),
		[]grid.Coord{{X: 3, Y: 3}, {X: 4, Y: 3}},
		grid.Coord{X: 5, Y: 3})
	freeBefore := g.FreeCount()

	assert.Equal(t, PhaseRunning, g.Tick(grid.DirRight))
	require.NoError(t, g.Verify())

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, grid.Coord{X: 5, Y: 3}, g.Head())
	assert.Equal(t, grid.Coord{X: 3, Y: 3}, g.body.Tail())
	assert.Equal(t, freeBefore-1, g.FreeCount())
	assert.NotEqual(t, g.Head(), g.Food())
	assert.Equal(t, grid.CellFood, g.CellAt(g.Food()))
	assert.Equal(t, 1, g.Moves())
}

// TestTickEatLastFreeTile fills the board to one tile short and then to full
func TestTickEatLastFreeTile(t *testing.T) {
	path := serpentine(parameter.BoardCells)
	g := newFromLayout(t, rand.New(rand.NewSource(5)), path[:parameter.BoardCells-2], path[parameter.BoardCells-2])
	require.Equal(t, 1, g.FreeCount())

	// Eating consumes the food; the only free tile becomes the new food
	assert.Equal(t, PhaseRunning, g.Tick(grid.DirLeft))
	require.NoError(t, g.Verify())
	assert.Equal(t, parameter.BoardCells-1, g.Len())
	assert.Equal(t, 0, g.FreeCount())
	assert.Equal(t, path[parameter.BoardCells-1], g.Food())

	// No room for another food: the next meal ends the game
	assert.Equal(t, PhaseOver, g.Tick(grid.DirNone))
}

// TestTickBoardFullOnFood verifies Over without mutation when nothing is free
func TestTickBoardFullOnFood(t *testing.T) {
	path := serpentine(parameter.BoardCells)
	g := newFromLayout(t, fixedRand(0), path[:parameter.BoardCells-1], path[parameter.BoardCells-1])
	require.Equal(t, 0, g.FreeCount())

	before := g.Cells()
	head := g.Head()

	assert.Equal(t, PhaseOver, g.Tick(grid.DirLeft))
	assert.Equal(t, before, g.Cells())
	assert.Equal(t, head, g.Head())
	assert.Equal(t, parameter.BoardCells-1, g.Len())
	assert.Equal(t, 0, g.FreeCount())
	assert.Equal(t, 0, g.Moves())
	require.NoError(t, g.Verify())
}

// TestTickOverIsSticky verifies the terminal phase ignores further input
func TestTickOverIsSticky(t *testing.T) {
	g := NewGameState(fixedRand(0))
	for g.Tick(grid.DirLeft) != PhaseOver {
	}
	moves := g.Moves()
	before := g.Cells()

	for _, d := range allDirections {
		assert.Equal(t, PhaseOver, g.Tick(d))
	}
	assert.Equal(t, grid.DirLeft, g.Direction())
	assert.Equal(t, moves, g.Moves())
	assert.Equal(t, before, g.Cells())
}

// TestTickRandomWalk plays many random games checking every invariant after every tick
func TestTickRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	steer := rand.New(rand.NewSource(99))

	games, ate := 0, 0
	g := NewGameState(rng)
	for tick := 0; tick < 50000; tick++ {
		prevLen, prevFree, prevMoves := g.Len(), g.FreeCount(), g.Moves()
		before := g.Cells()

		// Bias toward the food so snakes actually grow
		dir := allDirections[steer.Intn(len(allDirections))]
		if steer.Intn(3) > 0 {
			dir = towards(g.Head(), g.Food())
		}

		phase := g.Tick(dir)
		require.NoError(t, g.Verify(), "tick %d", tick)

		switch phase {
		case PhaseReady:
			require.Equal(t, before, g.Cells())
		case PhaseRunning:
			require.Equal(t, prevMoves+1, g.Moves())
			require.True(t, g.Len() == 1 || grid.Adjacent(g.Head(), g.body.At(g.Len()-2)))
			if g.Len() == prevLen+1 {
				ate++
				require.Equal(t, prevFree-1, g.FreeCount())
			} else {
				require.Equal(t, prevLen, g.Len())
				require.Equal(t, prevFree, g.FreeCount())
			}
		case PhaseOver:
			require.Equal(t, before, g.Cells())
			require.Equal(t, prevMoves, g.Moves())
			games++
			g = NewGameState(rng)
		}
	}

	assert.Greater(t, games, 10)
	assert.Greater(t, ate, 100)
}

// towards picks a direction that reduces the distance from head to target
func towards(head, target grid.Coord) grid.Direction {
	switch {
	case target.X > head.X:
		return grid.DirRight
	case target.X < head.X:
		return grid.DirLeft
	case target.Y > head.Y:
		return grid.DirDown
	default:
		return grid.DirUp
	}
}

// TestTickNeverReachesContractPanics drives long games that end only by collision
func TestTickNeverReachesContractPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	for game := 0; game < 200; game++ {
		g := NewGameState(rng)
		assert.NotPanics(t, func() {
			for i := 0; i < 10000 && g.Tick(allDirections[rng.Intn(len(allDirections))]) != PhaseOver; i++ {
			}
		})
	}
}
