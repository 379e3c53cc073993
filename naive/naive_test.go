package naive_test

import (
	"testing"

	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/naive"
	"github.com/stretchr/testify/require"
)

func TestMatch_EmptyGraph(t *testing.T) {
	g, err := matchgraph.New(0, nil)
	require.NoError(t, err)

	m := naive.Match(g, nil)
	require.Empty(t, m.EdgeIndices)
	require.Equal(t, int64(0), m.Score())
}

func TestMatch_SingleEdge(t *testing.T) {
	g, err := matchgraph.New(2, []matchgraph.Edge{{From: 0, To: 1, Weight: 8}})
	require.NoError(t, err)

	m := naive.Match(g, nil)
	require.Equal(t, int64(8), m.Score())
}

func TestMatch_AboveCapReturnsEmpty(t *testing.T) {
	g, err := matchgraph.New(3, []matchgraph.Edge{{From: 0, To: 1, Weight: 1}})
	require.NoError(t, err)

	m := naive.MatchWithOptions(g, naive.Options{Cap: 2}, nil)
	require.Empty(t, m.EdgeIndices)
}

// The seeded scenarios of §8.
func TestMatch_SeededScenarios(t *testing.T) {
	cases := []struct {
		name      string
		vertices  int
		edges     []matchgraph.Edge
		wantScore int64
	}{
		{"triangle", 3, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 0, To: 2, Weight: 10},
		}, 10},
		{"3-edge path", 4, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 3}, {From: 2, To: 3, Weight: 2},
		}, 4},
		{"4-edge path", 5, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 10}, {From: 1, To: 2, Weight: 1},
			{From: 2, To: 3, Weight: 1}, {From: 3, To: 4, Weight: 9},
		}, 19},
		{"6-edge path", 7, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 10}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 2},
			{From: 3, To: 4, Weight: 9}, {From: 4, To: 5, Weight: 9}, {From: 5, To: 6, Weight: 2},
		}, 21},
		{"square", 4, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2},
			{From: 2, To: 3, Weight: 2}, {From: 3, To: 0, Weight: 2},
		}, 4},
		{"three disjoint edges", 6, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 10}, {From: 2, To: 3, Weight: 10}, {From: 4, To: 5, Weight: 9},
		}, 29},
		{"empty graph", 0, nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := matchgraph.New(tc.vertices, tc.edges)
			require.NoError(t, err)

			m := naive.Match(g, nil)
			require.NoError(t, matchgraph.Verify(g, m))
			require.Equal(t, tc.wantScore, m.Score())
		})
	}
}
