// Package solver defines the shape of a puzzle solver and a registry that
// maps puzzle days to solvers.
package solver

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/awlodge/adventofcode/pkg/errors"
)

// Answer holds the results of both parts of a puzzle day.
// A part that has not been solved is reported as zero.
type Answer struct {
	Part1 uint64 `json:"part1"`
	Part2 uint64 `json:"part2"`
}

func (a Answer) String() string {
	return fmt.Sprintf("part 1: %d, part 2: %d", a.Part1, a.Part2)
}

// Func solves one puzzle day. input is the puzzle text with trailing
// newlines removed.
type Func func(ctx context.Context, input string) (Answer, error)

// Key identifies a puzzle day.
type Key struct {
	Year int
	Day  int
}

func (k Key) String() string {
	return fmt.Sprintf("%d day %02d", k.Year, k.Day)
}

func (k Key) compare(o Key) int {
	if c := cmp.Compare(k.Year, o.Year); c != 0 {
		return c
	}
	return cmp.Compare(k.Day, o.Day)
}

// Registry maps puzzle days to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[Key]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[Key]Func)}
}

// Register adds fn as the solver for the given day. The year and day must
// be valid and not already registered.
func (r *Registry) Register(year, day int, fn Func) error {
	if err := errors.ValidateYear(year); err != nil {
		return err
	}
	if err := errors.ValidateDay(day); err != nil {
		return err
	}
	if fn == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil solver for %d day %d", year, day)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := Key{Year: year, Day: day}
	if _, ok := r.solvers[k]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "%s already registered", k)
	}
	r.solvers[k] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(year, day int, fn Func) {
	if err := r.Register(year, day, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the solver for the given day.
func (r *Registry) Lookup(year, day int) (Func, error) {
	r.mu.RLock()
	fn, ok := r.solvers[Key{Year: year, Day: day}]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeSolverNotFound, "no solver for %d day %d", year, day)
	}
	return fn, nil
}

// Keys returns every registered day in chronological order.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.SortedFunc(maps.Keys(r.solvers), Key.compare)
}

// Days returns the registered days of year in ascending order.
func (r *Registry) Days(year int) []int {
	var days []int
	for _, k := range r.Keys() {
		if k.Year == year {
			days = append(days, k.Day)
		}
	}
	return days
}

// Years returns the years with at least one registered day, ascending.
func (r *Registry) Years() []int {
	var years []int
	for _, k := range r.Keys() {
		if n := len(years); n == 0 || years[n-1] != k.Year {
			years = append(years, k.Year)
		}
	}
	return years
}
