package adjindex_test

import (
	"testing"

	"github.com/jonasdoubleyou/matching/adjindex"
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/trace"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *matchgraph.Graph {
	t.Helper()
	g, err := matchgraph.New(3, []matchgraph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 2, Weight: 10},
	})
	require.NoError(t, err)
	return g
}

func TestBuild_Undirected(t *testing.T) {
	g := triangle(t)
	idx := adjindex.Build(g, adjindex.Undirected, trace.NoopSink{})

	require.ElementsMatch(t, []int{0, 2}, idx.IncidentEdges(0))
	require.ElementsMatch(t, []int{0, 1}, idx.IncidentEdges(1))
	require.ElementsMatch(t, []int{1, 2}, idx.IncidentEdges(2))
	require.False(t, idx.IsEmpty())
}

func TestBuild_ForwardOnly(t *testing.T) {
	g := triangle(t)
	idx := adjindex.Build(g, adjindex.ForwardOnly, trace.NoopSink{})

	require.ElementsMatch(t, []int{0, 2}, idx.IncidentEdges(0))
	require.ElementsMatch(t, []int{1}, idx.IncidentEdges(1))
	require.Nil(t, idx.IncidentEdges(2))
}

func TestRemove_PurgesNeighbors(t *testing.T) {
	g := triangle(t)
	idx := adjindex.Build(g, adjindex.Undirected, trace.NoopSink{})

	idx.Remove(0)

	require.False(t, idx.Contains(0))
	require.ElementsMatch(t, []int{1}, idx.IncidentEdges(1))
	require.ElementsMatch(t, []int{1}, idx.IncidentEdges(2))
}

func TestRemove_AbsentVertexIsNoop(t *testing.T) {
	g := triangle(t)
	idx := adjindex.Build(g, adjindex.Undirected, trace.NoopSink{})

	idx.Remove(0)
	require.NotPanics(t, func() { idx.Remove(0) })
}

func TestIsEmpty_AfterRemovingAll(t *testing.T) {
	g := triangle(t)
	idx := adjindex.Build(g, adjindex.Undirected, trace.NoopSink{})

	idx.Remove(0)
	idx.Remove(1)
	idx.Remove(2)
	require.True(t, idx.IsEmpty())
}

func TestIterEntries_VisitsOnlyNonEmpty(t *testing.T) {
	g := triangle(t)
	idx := adjindex.Build(g, adjindex.Undirected, trace.NoopSink{})
	idx.Remove(1)

	var seen []int
	idx.IterEntries(func(v int, edges []int) { seen = append(seen, v) })
	require.ElementsMatch(t, []int{0, 2}, seen)
}
