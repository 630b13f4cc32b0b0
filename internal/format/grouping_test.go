package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrouping_FirstSeenOrder(t *testing.T) {
	g := newGrouping[string, int]()
	g.add("b", 1)
	g.add("a", 2)
	g.add("b", 3)
	g.add("c", 4)

	var keys []string
	var sizes []int
	err := g.each(func(key string, values []int) error {
		keys = append(keys, key)
		sizes = append(sizes, len(values))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "c"}, keys)
	require.Equal(t, []int{2, 1, 1}, sizes)
}

func TestGrouping_EachStopsOnError(t *testing.T) {
	g := newGrouping[int, int]()
	g.add(1, 1)
	g.add(2, 2)

	visited := 0
	err := g.each(func(int, []int) error {
		visited++
		return errSentinel
	})
	require.ErrorIs(t, err, errSentinel)
	require.Equal(t, 1, visited)
}

type sentinelError struct{}

func (sentinelError) Error() string { return "sentinel" }

var errSentinel = sentinelError{}
