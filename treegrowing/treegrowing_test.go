package treegrowing_test

import (
	"testing"

	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/treegrowing"
	"github.com/stretchr/testify/require"
)

func TestMatch_EmptyGraph(t *testing.T) {
	g, err := matchgraph.New(0, nil)
	require.NoError(t, err)

	m := treegrowing.Match(g, nil)
	require.Empty(t, m.EdgeIndices)
}

func TestMatch_SingleEdge(t *testing.T) {
	g, err := matchgraph.New(2, []matchgraph.Edge{{From: 0, To: 1, Weight: 6}})
	require.NoError(t, err)

	m := treegrowing.Match(g, nil)
	require.NoError(t, matchgraph.Verify(g, m))
	require.Equal(t, int64(6), m.Score())
}

func TestMatch_NoEdges(t *testing.T) {
	g, err := matchgraph.New(3, nil)
	require.NoError(t, err)

	m := treegrowing.Match(g, nil)
	require.Empty(t, m.EdgeIndices)
}

func TestMatch_Triangle_FindsOptimum(t *testing.T) {
	g, err := matchgraph.New(3, []matchgraph.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 0, To: 2, Weight: 10},
	})
	require.NoError(t, err)

	m := treegrowing.Match(g, nil)
	require.NoError(t, matchgraph.Verify(g, m))
	require.Equal(t, int64(10), m.Score())
}

func TestMatch_ValidOnDisconnectedGraph(t *testing.T) {
	g, err := matchgraph.New(6, []matchgraph.Edge{
		{From: 0, To: 1, Weight: 10}, {From: 2, To: 3, Weight: 10}, {From: 4, To: 5, Weight: 9},
	})
	require.NoError(t, err)

	m := treegrowing.Match(g, nil)
	require.NoError(t, matchgraph.Verify(g, m))
	require.Equal(t, int64(29), m.Score())
}

// TestMatch_ValidEverywhere runs two small fixed graphs (a 4-edge path and
// a square) and checks only the universal matching invariant (§8) since the heuristic
// carries no numeric optimality guarantee.
func TestMatch_ValidEverywhere(t *testing.T) {
	graphs := []struct {
		n     int
		edges []matchgraph.Edge
	}{
		{5, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 10}, {From: 1, To: 2, Weight: 1},
			{From: 2, To: 3, Weight: 1}, {From: 3, To: 4, Weight: 9},
		}},
		{4, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2},
			{From: 2, To: 3, Weight: 2}, {From: 3, To: 0, Weight: 2},
		}},
	}
	for _, tc := range graphs {
		g, err := matchgraph.New(tc.n, tc.edges)
		require.NoError(t, err)
		m := treegrowing.Match(g, nil)
		require.NoError(t, matchgraph.Verify(g, m))
	}
}
