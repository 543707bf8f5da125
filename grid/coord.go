// Package grid defines board coordinates, cell kinds and movement directions
// shared by the game core and the terminal shell.
package grid

import (
	"fmt"

	"github.com/lixenwraith/gridsnake/parameter"
)

// Coord addresses one tile, 0 <= X,Y < parameter.BoardSide when on board
type Coord struct {
	X, Y int8
}

// Index returns the cell index y*BoardSide + x
// Only meaningful for on-board coordinates
func (c Coord) Index() int {
	return int(c.Y)*parameter.BoardSide + int(c.X)
}

// InBounds reports whether c lies on the board
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < parameter.BoardSide && c.Y >= 0 && c.Y < parameter.BoardSide
}

// Step returns the neighbour of c one tile towards d, possibly off board
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent reports whether a and b are exactly one tile apart on one axis
func Adjacent(a, b Coord) bool {
	dx := int(a.X) - int(b.X)
	dy := int(a.Y) - int(b.Y)
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// FromIndex is the inverse of Coord.Index
func FromIndex(idx int) Coord {
	return Coord{
		X: int8(idx % parameter.BoardSide),
		Y: int8(idx / parameter.BoardSide),
	}
}
