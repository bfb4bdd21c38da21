// Package counter provides a map that counts occurrences per key.
package counter

// Counter maps keys to counts. Missing keys count as zero.
type Counter[K comparable] map[K]int

// Add increases the count of k by n, inserting k if needed.
func (c Counter[K]) Add(k K, n int) {
	c[k] += n
}

// Sum returns the total of all counts.
func (c Counter[K]) Sum() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
