package matchgraph_test

import (
	"testing"

	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsSelfLoop(t *testing.T) {
	_, err := matchgraph.New(2, []matchgraph.Edge{{From: 0, To: 0, Weight: 1}})
	require.ErrorIs(t, err, matchgraph.ErrSelfLoop)
}

func TestNew_RejectsNegativeWeight(t *testing.T) {
	_, err := matchgraph.New(2, []matchgraph.Edge{{From: 0, To: 1, Weight: -1}})
	require.ErrorIs(t, err, matchgraph.ErrNegativeWeight)
}

func TestNew_RejectsOutOfRange(t *testing.T) {
	_, err := matchgraph.New(2, []matchgraph.Edge{{From: 0, To: 5, Weight: 1}})
	require.ErrorIs(t, err, matchgraph.ErrVertexOutOfRange)
}

func TestNew_RejectsDuplicateEdge(t *testing.T) {
	edges := []matchgraph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: 2},
	}
	_, err := matchgraph.New(2, edges)
	require.ErrorIs(t, err, matchgraph.ErrDuplicateEdge)
}

func TestNew_EmptyGraph(t *testing.T) {
	g, err := matchgraph.New(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
	require.Empty(t, g.Edges())
}

func TestMatching_Score(t *testing.T) {
	g, err := matchgraph.New(3, []matchgraph.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 7},
	})
	require.NoError(t, err)

	m := matchgraph.NewMatching(g, []int{0})
	require.Equal(t, int64(5), m.Score())
	require.Equal(t, []matchgraph.Edge{{From: 0, To: 1, Weight: 5}}, m.Edges())
}

func TestVerify_DetectsSharedVertex(t *testing.T) {
	g, err := matchgraph.New(3, []matchgraph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
	})
	require.NoError(t, err)

	m := matchgraph.NewMatching(g, []int{0, 1})
	require.ErrorIs(t, matchgraph.Verify(g, m), matchgraph.ErrVertexUsedTwice)
}

func TestVerify_AcceptsValidMatching(t *testing.T) {
	g, err := matchgraph.New(4, []matchgraph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})
	require.NoError(t, err)

	m := matchgraph.NewMatching(g, []int{0, 1})
	require.NoError(t, matchgraph.Verify(g, m))
}

func TestVerify_RejectsForeignEdgeIndex(t *testing.T) {
	g, err := matchgraph.New(2, []matchgraph.Edge{{From: 0, To: 1, Weight: 1}})
	require.NoError(t, err)

	m := matchgraph.NewMatching(g, []int{7})
	require.ErrorIs(t, matchgraph.Verify(g, m), matchgraph.ErrForeignEdge)
}

func TestEdge_Other(t *testing.T) {
	e := matchgraph.Edge{From: 0, To: 1, Weight: 1}
	require.Equal(t, 1, e.Other(0))
	require.Equal(t, 0, e.Other(1))
}

func TestEdge_Other_PanicsOnNonEndpoint(t *testing.T) {
	e := matchgraph.Edge{From: 0, To: 1, Weight: 1}
	require.Panics(t, func() { e.Other(2) })
}
