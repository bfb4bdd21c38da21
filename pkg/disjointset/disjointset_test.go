package disjointset_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awlodge/adventofcode/pkg/disjointset"
)

func members[T comparable](c disjointset.Cluster[T]) []T {
	return slices.Collect(c.Members())
}

func sizes[T comparable](s *disjointset.Set[T]) []int {
	var out []int
	for c := range s.Clusters() {
		out = append(out, c.Len())
	}
	return out
}

func TestInsertNewPair(t *testing.T) {
	s := disjointset.New[string]()
	s.Insert("a", "b")

	require.Equal(t, 1, s.Len())
	c, ok := s.Find("a")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"a", "b"}, members(c))
}

func TestInsertExtendsCluster(t *testing.T) {
	s := disjointset.New[string]()
	s.Insert("a", "b")
	s.Insert("c", "b")

	require.Equal(t, 1, s.Len())
	c, _ := s.Find("c")
	assert.ElementsMatch(t, []string{"a", "b", "c"}, members(c))
}

func TestInsertMergesClusters(t *testing.T) {
	s := disjointset.New[string]()
	s.Insert("a", "b")
	s.Insert("c", "d")
	require.Equal(t, 2, s.Len())

	s.Insert("b", "c")

	require.Equal(t, 1, s.Len())
	for c := range s.Clusters() {
		assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, members(c))
	}
}

func TestMergeKeepsEarlierPosition(t *testing.T) {
	s := disjointset.New[int]()
	s.Insert(1, 2)
	s.Insert(3, 4)
	s.Insert(5, 6)
	s.Insert(6, 1)

	var firsts []bool
	for c := range s.Clusters() {
		firsts = append(firsts, c.Contains(1))
	}
	assert.Equal(t, []bool{true, false}, firsts)
	assert.Equal(t, []int{4, 2}, sizes(s))
}

func TestInsertIdempotent(t *testing.T) {
	s := disjointset.New[int]()
	s.Insert(1, 2)
	s.Insert(2, 3)
	before := sizes(s)

	s.Insert(1, 3)
	s.Insert(3, 1)
	s.Insert(2, 2)

	assert.Equal(t, before, sizes(s))
}

func TestInsertSelfPair(t *testing.T) {
	s := disjointset.New[int]()
	s.Insert(7, 7)

	require.Equal(t, 1, s.Len())
	c, ok := s.Find(7)
	require.True(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestFindMissing(t *testing.T) {
	s := disjointset.New[int]()
	s.Insert(1, 2)

	_, ok := s.Find(3)
	assert.False(t, ok)
}

func TestZeroValue(t *testing.T) {
	var s disjointset.Set[int]
	assert.Equal(t, 0, s.Len())
	s.Insert(1, 2)
	assert.Equal(t, 1, s.Len())
}

func TestSort(t *testing.T) {
	s := disjointset.New[int]()
	s.Insert(1, 2)
	s.Insert(10, 11)
	s.Insert(11, 12)
	s.Insert(12, 13)
	s.Insert(20, 21)
	s.Insert(21, 22)
	s.Insert(30, 31)

	s.Sort()

	assert.Equal(t, []int{4, 3, 2, 2}, sizes(s))

	var order []bool
	for c := range s.Clusters() {
		if c.Len() == 2 {
			order = append(order, c.Contains(1))
		}
	}
	assert.Equal(t, []bool{true, false}, order, "equal sized clusters keep their order")
}

func TestPartitionInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := disjointset.New[int]()

	// Reference partition via naive labelling.
	label := make(map[int]int)
	next := 0
	for range 500 {
		x, y := rng.IntN(200), rng.IntN(200)
		s.Insert(x, y)

		lx, okx := label[x]
		ly, oky := label[y]
		switch {
		case !okx && !oky:
			label[x], label[y] = next, next
			next++
		case okx && !oky:
			label[y] = lx
		case !okx && oky:
			label[x] = ly
		case lx != ly:
			for k, v := range label {
				if v == ly {
					label[k] = lx
				}
			}
		}
	}

	seen := make(map[int]bool)
	for c := range s.Clusters() {
		ms := members(c)
		require.NotEmpty(t, ms)
		want := label[ms[0]]
		for _, m := range ms {
			assert.False(t, seen[m], "%d appears in two clusters", m)
			seen[m] = true
			assert.Equal(t, want, label[m], "%d grouped with %d", m, ms[0])
		}
	}
	assert.Len(t, seen, len(label))

	groups := make(map[int]bool)
	for _, v := range label {
		groups[v] = true
	}
	assert.Equal(t, len(groups), s.Len())
}
