package grid

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrMismatchedColumns is returned by [New] and the text parsers when
	// rows have differing lengths.
	ErrMismatchedColumns = errors.New("grid: rows have mismatched column counts")

	// ErrPointNotInGrid is returned by [Grid.Update] and [Grid.Swap] when a
	// point lies outside the grid.
	ErrPointNotInGrid = errors.New("grid: point not in grid")

	// ErrNotDigit is returned by [ParseDigits] for a non-digit character.
	ErrNotDigit = errors.New("grid: not a decimal digit")
)

// Grid is a fixed-size rectangle of cells. Cells are stored row by row and
// addressed as cells[y][x].
//
// The zero value is an empty 0x0 grid. Use [New], [ParseRunes] or
// [ParseDigits] to build a populated one.
type Grid[T any] struct {
	cells [][]T
	cols  int
}

// New builds a grid from rows, copying them so later changes to rows do not
// affect the grid. All rows must have the same length, otherwise
// ErrMismatchedColumns is returned. An empty rows slice gives a 0x0 grid.
func New[T any](rows [][]T) (*Grid[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	cells := make([][]T, len(rows))
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMismatchedColumns, y, len(row), cols)
		}
		cells[y] = append(make([]T, 0, cols), row...)
	}
	return &Grid[T]{cells: cells, cols: cols}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return len(g.cells) }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Contains reports whether p lies within the grid.
func (g *Grid[T]) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < len(g.cells)
}

// Get returns the value at p. If p is outside the grid it returns the zero
// value and false.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y][p.X], true
}

// Update sets the value at p.
func (g *Grid[T]) Update(p Point, v T) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %v", ErrPointNotInGrid, p)
	}
	g.cells[p.Y][p.X] = v
	return nil
}

// Swap exchanges the values at p and q. Both points are checked before
// anything is written, so on error the grid is unchanged.
func (g *Grid[T]) Swap(p, q Point) error {
	for _, pt := range [2]Point{p, q} {
		if !g.Contains(pt) {
			return fmt.Errorf("%w: %v", ErrPointNotInGrid, pt)
		}
	}
	g.cells[p.Y][p.X], g.cells[q.Y][q.X] = g.cells[q.Y][q.X], g.cells[p.Y][p.X]
	return nil
}

// Walk yields every cell in row-major order: row 0 left to right, then row 1,
// and so on.
func (g *Grid[T]) Walk() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for y := range g.cells {
			for x := 0; x < g.cols; x++ {
				if !yield(Pt(x, y), g.cells[y][x]) {
					return
				}
			}
		}
	}
}

// WalkRow yields the cells of row y from left to right. It yields nothing if
// y is not a valid row.
func (g *Grid[T]) WalkRow(y int) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		if y < 0 || y >= len(g.cells) {
			return
		}
		for x, v := range g.cells[y] {
			if !yield(Pt(x, y), v) {
				return
			}
		}
	}
}

// Adjacent yields the in-bounds compass neighbours of p with their values,
// in [Directions] order. Out-of-bounds neighbours are skipped, so a corner
// cell has three neighbours and an interior cell eight.
func (g *Grid[T]) Adjacent(p Point) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for d := range Directions() {
			q := p.Add(d.Offset())
			v, ok := g.Get(q)
			if !ok {
				continue
			}
			if !yield(q, v) {
				return
			}
		}
	}
}

// Find returns the first point, in walk order, whose value satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for p, v := range g.Walk() {
		if match(v) {
			return p, true
		}
	}
	return Point{}, false
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	c, _ := New(g.cells)
	return c
}
