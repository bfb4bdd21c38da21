package grid

import "iter"

// Direction is one of the eight compass headings.
//
// The declaration order below is the iteration order used by [Directions]
// and [Grid.Adjacent]: clockwise starting from North.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// numDirections is the number of compass headings.
const numDirections = 8

var offsets = [numDirections]Point{
	North:     {X: 0, Y: -1},
	NorthEast: {X: 1, Y: -1},
	East:      {X: 1, Y: 0},
	SouthEast: {X: 1, Y: 1},
	South:     {X: 0, Y: 1},
	SouthWest: {X: -1, Y: 1},
	West:      {X: -1, Y: 0},
	NorthWest: {X: -1, Y: -1},
}

var names = [numDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Offset returns the unit vector for d. An unknown direction has a zero offset.
func (d Direction) Offset() Point {
	if d < 0 || d >= numDirections {
		return Point{}
	}
	return offsets[d]
}

func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return "Direction(?)"
	}
	return names[d]
}

// Directions yields all eight directions exactly once, clockwise from North.
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := North; d <= NorthWest; d++ {
			if !yield(d) {
				return
			}
		}
	}
}
