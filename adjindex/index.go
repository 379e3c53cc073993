// Package adjindex provides a dense per-vertex adjacency index built from a
// matchgraph.Graph's edge list, generalizing the teacher's map-of-map
// adjacency list (core.Graph.adjacencyList) into a flat array keyed by the
// graph's already-dense vertex ids.
//
// An Index supports two construction modes (undirected fill, forward-only
// fill) and single-vertex removal that purges every edge incident to the
// removed vertex from its neighbors. Build optionally emits trace events
// per edge filled; these are observable side effects only and never change
// the index's resulting structure. Remove emits no trace events.
package adjindex

import (
	"fmt"

	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/trace"
)

// Fill selects how edges are appended to per-vertex lists during Build.
type Fill int

const (
	// Undirected appends each edge to both endpoints' lists.
	Undirected Fill = iota
	// ForwardOnly appends each edge only to its From endpoint's list.
	ForwardOnly
)

// Index is a dense per-vertex edge-index lookup over a fixed graph.
// Entries are nil once a vertex has been removed or never had incident
// edges. Present counts non-empty entries so IsEmpty is O(1).
type Index struct {
	graph   *matchgraph.Graph
	mode    Fill
	entries [][]int // entries[v] = edge indices incident to v, or nil
	present int
}

// Build constructs an Index over g's edges using the given fill mode.
// sink receives a Step/CurrentEdge event per edge processed; pass
// trace.NoopSink{} if the caller has nothing to observe.
func Build(g *matchgraph.Graph, mode Fill, sink trace.Sink) *Index {
	sink = trace.Or(sink)
	idx := &Index{
		graph:   g,
		mode:    mode,
		entries: make([][]int, g.VertexCount()),
	}
	for i, e := range g.Edges() {
		sink.CurrentEdge(i)
		idx.append(e.From, i)
		if mode == Undirected {
			idx.append(e.To, i)
		}
		sink.Step("adjindex.fill")
	}
	return idx
}

func (idx *Index) append(v, edgeIdx int) {
	if idx.entries[v] == nil {
		idx.present++
	}
	idx.entries[v] = append(idx.entries[v], edgeIdx)
}

// IncidentEdges returns the edge indices incident to v, or nil if v is
// absent (never populated, or removed).
func (idx *Index) IncidentEdges(v int) []int {
	return idx.entries[v]
}

// Contains reports whether v currently has at least one incident edge
// tracked by this index.
func (idx *Index) Contains(v int) bool {
	return len(idx.entries[v]) > 0
}

// IsEmpty reports whether no vertex currently has incident edges.
func (idx *Index) IsEmpty() bool {
	return idx.present == 0
}

// IterEntries calls fn once per vertex that currently has incident edges,
// in ascending vertex-id order.
func (idx *Index) IterEntries(fn func(v int, edges []int)) {
	for v, edges := range idx.entries {
		if len(edges) > 0 {
			fn(v, edges)
		}
	}
}

// Remove deletes v from the index. Under Undirected fill it also purges
// every edge incident to v from each other endpoint's list, since that
// mode put the edge in both lists. Under ForwardOnly fill an edge lives
// only in its From endpoint's list, so there is nothing to purge from the
// other endpoint — doing so would either be a no-op (v is From) or would
// wrongly expect an edge in a list that fill mode never populated (v is
// To). Removing an absent vertex is a no-op. If an endpoint becomes empty
// as a result it is considered absent.
//
// Internal inconsistency — an edge expected in a neighbor's list isn't
// there, under Undirected fill — is a program bug and panics with a
// diagnostic, per the component's error-handling contract.
func (idx *Index) Remove(v int) {
	edges := idx.entries[v]
	if edges == nil {
		return
	}

	if idx.mode == Undirected {
		for _, edgeIdx := range edges {
			e := idx.graph.Edge(edgeIdx)
			other := e.Other(v)
			if other == v {
				continue // self-loops cannot occur (rejected at graph construction) but guard defensively
			}
			idx.purgeFrom(other, edgeIdx)
		}
	}

	idx.entries[v] = nil
	idx.present--
}

func (idx *Index) purgeFrom(v, edgeIdx int) {
	list := idx.entries[v]
	for i, e := range list {
		if e == edgeIdx {
			list[i] = list[len(list)-1]
			list = list[:len(list)-1]
			if len(list) == 0 {
				idx.entries[v] = nil
				idx.present--
			} else {
				idx.entries[v] = list
			}
			return
		}
	}
	panic(fmt.Sprintf("adjindex: internal inconsistency: edge %d not found in vertex %d's list", edgeIdx, v))
}
