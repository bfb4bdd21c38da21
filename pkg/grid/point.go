package grid

import (
	"bytes"
	"fmt"
	"strconv"
)

// Point is an integer coordinate pair. Points are plain values and compare
// with ==.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Up returns the point one row above p.
func (p Point) Up() Point { return p.Add(North.Offset()) }

// Down returns the point one row below p.
func (p Point) Down() Point { return p.Add(South.Offset()) }

// Left returns the point one column left of p.
func (p Point) Left() Point { return p.Add(West.Offset()) }

// Right returns the point one column right of p.
func (p Point) Right() Point { return p.Add(East.Offset()) }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// UnmarshalText parses a point written as "x,y", so that points can be read
// with the parse package.
func (p *Point) UnmarshalText(text []byte) error {
	xs, ys, ok := bytes.Cut(text, []byte(","))
	if !ok {
		return fmt.Errorf("grid: point %q: want x,y", text)
	}
	x, err := strconv.Atoi(string(bytes.TrimSpace(xs)))
	if err != nil {
		return fmt.Errorf("grid: point %q: %w", text, err)
	}
	y, err := strconv.Atoi(string(bytes.TrimSpace(ys)))
	if err != nil {
		return fmt.Errorf("grid: point %q: %w", text, err)
	}
	p.X, p.Y = x, y
	return nil
}
