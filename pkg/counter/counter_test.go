package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awlodge/adventofcode/pkg/counter"
)

func TestCounter(t *testing.T) {
	c := counter.Counter[string]{}
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("a", 3)

	assert.Equal(t, 4, c["a"])
	assert.Equal(t, 2, c["b"])
	assert.Equal(t, 0, c["missing"])
	assert.Equal(t, 6, c.Sum())
	assert.Equal(t, 0, counter.Counter[int]{}.Sum())
}
