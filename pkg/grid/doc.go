// Package grid provides a bounded two-dimensional grid addressed by (x, y)
// points, with compass-direction neighbour enumeration.
//
// # Overview
//
// Most grid puzzles boil down to reading a block of text into a rectangle of
// cells and then asking questions about a cell's neighbours. [Grid] keeps all
// bounds checking in one place: [Grid.Get] reports whether a point is inside
// the grid instead of panicking, and [Grid.Adjacent] only ever yields
// in-bounds neighbours, so caller code never does its own range arithmetic.
//
// # Coordinates
//
// X grows to the right (columns) and Y grows downward (rows). A point is
// inside the grid iff 0 <= X < Cols and 0 <= Y < Rows. [Point.Up] therefore
// decreases Y and [North] is the offset (0, -1).
//
// # Building Grids
//
// [New] builds a grid from a slice of rows and rejects ragged input with
// [ErrMismatchedColumns]. [ParseRunes] and [ParseDigits] build grids from
// newline-separated text:
//
//	g, err := grid.ParseRunes("AB\nCD")
//	v, _ := g.Get(grid.Pt(1, 0)) // 'B'
//
// # Iteration
//
// [Grid.Walk], [Grid.WalkRow] and [Grid.Adjacent] return range-over-func
// iterators. Each call starts a fresh pass; mutating the grid while ranging
// over it is allowed and later cells reflect the mutation.
//
// # Concurrency
//
// Grid values are not safe for concurrent mutation.
package grid
