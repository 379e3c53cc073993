package matcher_test

import (
	"testing"

	"github.com/jonasdoubleyou/matching/matcher"
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/stretchr/testify/require"
)

// countingIterator yields n steps then returns m.
type countingIterator struct {
	remaining int
	result    *matchgraph.Matching
}

func (c *countingIterator) Next() bool {
	if c.remaining == 0 {
		return false
	}
	c.remaining--
	return true
}

func (c *countingIterator) Result() (*matchgraph.Matching, bool) {
	return c.result, true
}

func TestRunToCompletion_DrainsAllSteps(t *testing.T) {
	g, err := matchgraph.New(2, []matchgraph.Edge{{From: 0, To: 1, Weight: 3}})
	require.NoError(t, err)
	want := matchgraph.NewMatching(g, []int{0})

	it := &countingIterator{remaining: 5, result: want}
	got := matcher.RunToCompletion(it)

	require.Equal(t, 0, it.remaining)
	require.Same(t, want, got)
}
