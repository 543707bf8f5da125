package engine

import (
	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Ring is the snake body as a fixed-capacity circular buffer, ordered tail to head
// The live body occupies length slots starting at tail, wrapping at BoardCells
// Push/Pop are index arithmetic only: no search, no shifting
type Ring struct {
	slots  [parameter.BoardCells]grid.Coord
	tail   int
	length int
}

// PushHead appends c as the new head. O(1)
// Panics when the ring already holds BoardCells coordinates
func (r *Ring) PushHead(c grid.Coord) {
	if r.length == parameter.BoardCells {
		panic("engine: push to full ring")
	}
	r.slots[(r.tail+r.length)%parameter.BoardCells] = c
	r.length++
}

// PopTail removes and returns the tail. O(1)
// Panics on an empty ring
func (r *Ring) PopTail() grid.Coord {
	if r.length == 0 {
		panic("engine: pop from empty ring")
	}
	c := r.slots[r.tail]
	r.tail = (r.tail + 1) % parameter.BoardCells
	r.length--
	return c
}

// Head returns the newest coordinate without mutation
func (r *Ring) Head() grid.Coord {
	if r.length == 0 {
		panic("engine: head of empty ring")
	}
	return r.slots[(r.tail+r.length-1)%parameter.BoardCells]
}

// Tail returns the oldest coordinate without mutation
func (r *Ring) Tail() grid.Coord {
	if r.length == 0 {
		panic("engine: tail of empty ring")
	}
	return r.slots[r.tail]
}

// At returns the i-th body coordinate counted from the tail, 0 <= i < Len
func (r *Ring) At(i int) grid.Coord {
	if i < 0 || i >= r.length {
		panic("engine: ring index out of range")
	}
	return r.slots[(r.tail+i)%parameter.BoardCells]
}

// Len returns the number of coordinates held
func (r *Ring) Len() int {
	return r.length
}

// Each visits the body from tail to head; stops early when fn returns false
func (r *Ring) Each(fn func(i int, c grid.Coord) bool) {
	for i := 0; i < r.length; i++ {
		if !fn(i, r.slots[(r.tail+i)%parameter.BoardCells]) {
			return
		}
	}
}
