// Package disjointset maintains a partition of values into clusters that
// only ever grow by union.
//
// Clusters are kept in an ordered list. A new cluster is appended at the end
// of the list; when an insert links two existing clusters, the later one is
// folded into the earlier one and removed. Lookups scan the list, so the
// structure suits the small inputs it is used with rather than very large
// partitions.
//
// A Set is not safe for concurrent use.
package disjointset

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a collection of pairwise disjoint clusters.
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	clusters []map[T]struct{}
}

// New returns an empty Set.
func New[T comparable]() *Set[T] {
	return &Set[T]{}
}

// Insert records that x and y belong to the same cluster.
//
// If neither value is known a new cluster {x, y} is appended. If one of them
// is known the other joins its cluster. If they sit in two different
// clusters, the later cluster is merged into the earlier one and removed.
// Re-inserting a pair that already shares a cluster is a no-op.
func (s *Set[T]) Insert(x, y T) {
	i := s.index(x, y, 0)
	if i < 0 {
		s.clusters = append(s.clusters, map[T]struct{}{x: {}, y: {}})
		return
	}

	c := s.clusters[i]
	_, hasX := c[x]
	_, hasY := c[y]
	if hasX && hasY {
		return
	}

	missing := y
	if hasY {
		missing = x
	}

	j := s.index(missing, missing, i+1)
	if j < 0 {
		c[missing] = struct{}{}
		return
	}

	maps.Copy(c, s.clusters[j])
	s.clusters = slices.Delete(s.clusters, j, j+1)
}

// index returns the position of the first cluster at or after from that
// holds x or y, or -1.
func (s *Set[T]) index(x, y T, from int) int {
	for i := from; i < len(s.clusters); i++ {
		c := s.clusters[i]
		if _, ok := c[x]; ok {
			return i
		}
		if _, ok := c[y]; ok {
			return i
		}
	}
	return -1
}

// Len returns the number of clusters.
func (s *Set[T]) Len() int {
	return len(s.clusters)
}

// Clusters yields the current clusters in list order.
func (s *Set[T]) Clusters() iter.Seq[Cluster[T]] {
	return func(yield func(Cluster[T]) bool) {
		for _, c := range s.clusters {
			if !yield(Cluster[T]{members: c}) {
				return
			}
		}
	}
}

// Find returns the cluster holding v.
func (s *Set[T]) Find(v T) (Cluster[T], bool) {
	i := s.index(v, v, 0)
	if i < 0 {
		return Cluster[T]{}, false
	}
	return Cluster[T]{members: s.clusters[i]}, true
}

// Sort orders the clusters by size, largest first. Clusters of equal size
// keep their relative order.
func (s *Set[T]) Sort() {
	slices.SortStableFunc(s.clusters, func(a, b map[T]struct{}) int {
		return cmp.Compare(len(b), len(a))
	})
}

// Cluster is a read-only view of one cluster. It reflects later inserts
// into the owning Set.
type Cluster[T comparable] struct {
	members map[T]struct{}
}

// Len returns the number of members.
func (c Cluster[T]) Len() int {
	return len(c.members)
}

// Contains reports whether v is a member.
func (c Cluster[T]) Contains(v T) bool {
	_, ok := c.members[v]
	return ok
}

// Members yields the members in unspecified order.
func (c Cluster[T]) Members() iter.Seq[T] {
	return maps.Keys(c.members)
}
