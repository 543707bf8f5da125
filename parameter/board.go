package parameter

// Board geometry
const (
	// BoardSide is the number of tiles along each edge of the square board
	BoardSide = 16

	// BoardCells is the total tile count and the capacity of every per-cell array
	BoardCells = BoardSide * BoardSide

	// SpawnX, SpawnY is the tile the snake is seeded on
	SpawnX = BoardSide / 2
	SpawnY = BoardSide / 2
)
