package engine

import (
	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/parameter"
)

// FreeSet is the unordered set of empty tiles
// dense[:count] holds exactly the members; slot maps cell index to its position in dense
// plus one, zero meaning absent, so the zero value is an empty set ready to use
// Slot positions are internal: membership and count are the only observable state
type FreeSet struct {
	dense [parameter.BoardCells]grid.Coord
	slot  [parameter.BoardCells]int
	count int
}

// Rand is the randomness FreeSet.Sample draws from
// *golang.org/x/exp/rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
}

// Insert adds c, which must not already be a member. O(1)
func (s *FreeSet) Insert(c grid.Coord) {
	idx := c.Index()
	if s.slot[idx] != 0 {
		panic("engine: insert of free cell " + c.String())
	}
	s.dense[s.count] = c
	s.count++
	s.slot[idx] = s.count
}

// Remove deletes c, which must be a member. O(1)
// Uses swap-remove: the last member moves into the vacated slot
func (s *FreeSet) Remove(c grid.Coord) {
	idx := c.Index()
	if s.slot[idx] == 0 {
		panic("engine: remove of non-free cell " + c.String())
	}
	pos := s.slot[idx] - 1

	s.count--
	if pos < s.count {
		moved := s.dense[s.count]
		s.dense[pos] = moved
		s.slot[moved.Index()] = pos + 1
	}
	s.slot[idx] = 0
}

// Contains reports membership. O(1)
func (s *FreeSet) Contains(c grid.Coord) bool {
	return s.slot[c.Index()] != 0
}

// Sample returns a uniformly chosen member without removing it. O(1)
// Panics on an empty set
func (s *FreeSet) Sample(rng Rand) grid.Coord {
	if s.count == 0 {
		panic("engine: sample from empty free set")
	}
	return s.dense[rng.Intn(s.count)]
}

// Len returns the member count
func (s *FreeSet) Len() int {
	return s.count
}
