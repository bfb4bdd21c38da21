package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awlodge/adventofcode/pkg/errors"
)

func constant(p1, p2 uint64) Func {
	return func(context.Context, string) (Answer, error) {
		return Answer{Part1: p1, Part2: p2}, nil
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(2025, 1, constant(3, 6)))

	fn, err := r.Lookup(2025, 1)
	require.NoError(t, err)
	got, err := fn(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Answer{Part1: 3, Part2: 6}, got)

	_, err = r.Lookup(2025, 2)
	assert.True(t, errors.Is(err, errors.ErrCodeSolverNotFound), "got %v", err)
}

func TestRegisterRejects(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(2025, 1, constant(0, 0)))

	tests := []struct {
		name string
		year int
		day  int
		fn   Func
		code errors.Code
	}{
		{"duplicate", 2025, 1, constant(0, 0), errors.ErrCodeInvalidInput},
		{"bad day", 2025, 26, constant(0, 0), errors.ErrCodeInvalidDay},
		{"bad year", 1999, 1, constant(0, 0), errors.ErrCodeInvalidYear},
		{"nil func", 2025, 2, nil, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.year, tt.day, tt.fn)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(2025, 1, constant(0, 0))
	assert.Panics(t, func() { r.MustRegister(2025, 1, constant(0, 0)) })
}

func TestListing(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(2025, 11, constant(0, 0))
	r.MustRegister(2024, 3, constant(0, 0))
	r.MustRegister(2025, 2, constant(0, 0))
	r.MustRegister(2024, 1, constant(0, 0))

	assert.Equal(t, []Key{{2024, 1}, {2024, 3}, {2025, 2}, {2025, 11}}, r.Keys())
	assert.Equal(t, []int{2, 11}, r.Days(2025))
	assert.Empty(t, r.Days(2023))
	assert.Equal(t, []int{2024, 2025}, r.Years())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "2025 day 07", Key{Year: 2025, Day: 7}.String())
	assert.Equal(t, "part 1: 21, part 2: 40", Answer{Part1: 21, Part2: 40}.String())
}
