package blossom_test

import (
	"testing"

	"github.com/jonasdoubleyou/matching/blossom"
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/naive"
	"github.com/stretchr/testify/require"
)

func TestMatch_EmptyGraph(t *testing.T) {
	g, err := matchgraph.New(0, nil)
	require.NoError(t, err)

	m := blossom.Match(g, nil)
	require.Empty(t, m.EdgeIndices)
	require.Equal(t, int64(0), m.Score())
}

func TestMatch_SingleEdge(t *testing.T) {
	g, err := matchgraph.New(2, []matchgraph.Edge{{From: 0, To: 1, Weight: 7}})
	require.NoError(t, err)

	m := blossom.Match(g, nil)
	require.NoError(t, matchgraph.Verify(g, m))
	require.Equal(t, int64(7), m.Score())
}

func TestMatch_NoEdges(t *testing.T) {
	g, err := matchgraph.New(4, nil)
	require.NoError(t, err)

	m := blossom.Match(g, nil)
	require.Empty(t, m.EdgeIndices)
}

// The seeded scenarios of §8, which the blossom matcher must solve exactly.
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

			m := blossom.MatchWithOptions(g, blossom.Options{VerifyDual: true}, nil)
			require.NoError(t, matchgraph.Verify(g, m))
			require.Equal(t, tc.wantScore, m.Score())
		})
	}
}

// TestMatch_OddCycleNeedsABlossom runs the matcher on an odd 5-cycle of
// equal-weight edges, where the search meets an edge between two S-nodes
// of the same tree and has to contract the cycle into a blossom; the
// optimum is any two disjoint edges, score 10.
func TestMatch_OddCycleNeedsABlossom(t *testing.T) {
	g, err := matchgraph.New(5, []matchgraph.Edge{
		{From: 0, To: 1, Weight: 5}, {From: 1, To: 2, Weight: 5}, {From: 2, To: 3, Weight: 5},
		{From: 3, To: 4, Weight: 5}, {From: 4, To: 0, Weight: 5},
	})
	require.NoError(t, err)

	m := blossom.MatchWithOptions(g, blossom.Options{VerifyDual: true}, nil)
	require.NoError(t, matchgraph.Verify(g, m))
	require.Equal(t, int64(10), m.Score())
}

// TestMatch_AgreesWithNaive cross-checks the blossom matcher's score
// against the exhaustive oracle on three small fixed graphs (§8: "for all
// random inputs with |V| <= 15, score(blossom) == score(naive)").
func TestMatch_AgreesWithNaive(t *testing.T) {
	graphs := []struct {
		n     int
		edges []matchgraph.Edge
	}{
		{4, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 3}, {From: 1, To: 2, Weight: 4},
			{From: 2, To: 3, Weight: 1}, {From: 3, To: 0, Weight: 2},
			{From: 0, To: 2, Weight: 5},
		}},
		{6, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 6}, {From: 1, To: 2, Weight: 2}, {From: 2, To: 3, Weight: 6},
			{From: 3, To: 4, Weight: 2}, {From: 4, To: 5, Weight: 6}, {From: 5, To: 0, Weight: 2},
			{From: 0, To: 3, Weight: 1},
		}},
		{5, []matchgraph.Edge{
			{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1},
			{From: 3, To: 4, Weight: 1}, {From: 4, To: 0, Weight: 1},
		}},
	}

	for i, tc := range graphs {
		g, err := matchgraph.New(tc.n, tc.edges)
		require.NoError(t, err)

		want := naive.Match(g, nil)
		got := blossom.MatchWithOptions(g, blossom.Options{VerifyDual: true}, nil)

		require.NoError(t, matchgraph.Verify(g, got))
		require.Equalf(t, want.Score(), got.Score(), "graph %d", i)
	}
}

func TestMatch_IdempotentScoreUnderEdgeReorder(t *testing.T) {
	edges := []matchgraph.Edge{
		{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 3}, {From: 2, To: 3, Weight: 2},
	}
	reordered := []matchgraph.Edge{edges[2], edges[0], edges[1]}

	g1, err := matchgraph.New(4, edges)
	require.NoError(t, err)
	g2, err := matchgraph.New(4, reordered)
	require.NoError(t, err)

	require.Equal(t, blossom.Match(g1, nil).Score(), blossom.Match(g2, nil).Score())
}
