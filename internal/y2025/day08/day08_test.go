package day08

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awlodge/adventofcode/pkg/disjointset"
	"github.com/awlodge/adventofcode/pkg/parse"
	"github.com/awlodge/adventofcode/pkg/solver"
)

const sample = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689`

func TestDistance(t *testing.T) {
	p := box{162, 817, 812}
	q := box{431, 825, 988}
	assert.Equal(t, 103401, p.distance(q))
}

func TestSolveSample(t *testing.T) {
	got, err := solve(sample, 10)
	require.NoError(t, err)
	assert.Equal(t, solver.Answer{Part1: 40, Part2: 25272}, got)
}

func TestSolveTooFewPairs(t *testing.T) {
	// The sample has only 190 pairs, short of the thousand joins.
	_, err := Solve(context.Background(), sample)
	assert.ErrorIs(t, err, errTooFewPairs)

	_, err = solve(sample, 191)
	assert.ErrorIs(t, err, errTooFewPairs)
}

func TestSolveEveryPairJoined(t *testing.T) {
	got, err := solve(sample, 190)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), got.Part1, "one circuit of all boxes")
	assert.Equal(t, uint64(25272), got.Part2)
}

func TestConnectionsOrdered(t *testing.T) {
	boxes, err := parse.Lines[box](sample)
	require.NoError(t, err)

	conns := connections(boxes)
	require.Len(t, conns, 190)
	assert.Equal(t, box{162, 817, 812}, conns[0].a)
	assert.Equal(t, box{425, 690, 689}, conns[0].b)
	for i := 1; i < len(conns); i++ {
		assert.LessOrEqual(t, conns[i-1].distance, conns[i].distance)
	}
}

func TestLargestProduct(t *testing.T) {
	s := disjointset.New[box]()
	s.Insert(box{X: 1}, box{X: 2})
	s.Insert(box{X: 3}, box{X: 4})
	s.Insert(box{X: 4}, box{X: 5})

	assert.Equal(t, uint64(6), largestProduct(s, 3))
	assert.Equal(t, uint64(3), largestProduct(s, 1))
}

func TestBadBox(t *testing.T) {
	for _, input := range []string{"1,2", "1,2,x", "1,2,3,4"} {
		_, err := Solve(context.Background(), input)
		assert.ErrorIs(t, err, errBadBox, "input %q", input)
	}
}
