package parse_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awlodge/adventofcode/pkg/parse"
)

type num int

func (n *num) UnmarshalText(b []byte) error {
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	*n = num(v)
	return nil
}

func TestLines(t *testing.T) {
	got, err := parse.Lines[num]("1\n 22 \n-3")
	require.NoError(t, err)
	assert.Equal(t, []num{1, 22, -3}, got)
}

func TestLinesSingle(t *testing.T) {
	got, err := parse.Lines[num]("42")
	require.NoError(t, err)
	assert.Equal(t, []num{42}, got)
}

func TestLinesError(t *testing.T) {
	_, err := parse.Lines[num]("1\n2\nx\n4")
	require.Error(t, err)

	var le *parse.LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 2, le.Line)
	assert.Equal(t, "x", le.Text)

	var ne *strconv.NumError
	assert.True(t, errors.As(err, &ne), "unwraps to the decoder error")
}

func TestLinesFunc(t *testing.T) {
	got, err := parse.LinesFunc("ab\ncde", func(s string) (int, error) {
		return len(s), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)

	sentinel := errors.New("boom")
	_, err = parse.LinesFunc("ok\nbad", func(s string) (string, error) {
		if s == "bad" {
			return "", sentinel
		}
		return s, nil
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestSplit(t *testing.T) {
	got, err := parse.Split[num]("3,4, 5\n", ",")
	require.NoError(t, err)
	assert.Equal(t, []num{3, 4, 5}, got)

	_, err = parse.Split[num]("3,,5", ",")
	var le *parse.LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 1, le.Line)
}
