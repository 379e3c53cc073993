// Package pathgrowing implements the path-growing 1/2-approximation (§4.5)
// and its per-path "patched" variant. Both build an undirected adjindex.Index
// and walk it down to nothing, growing an alternating path by always taking
// the heaviest remaining incident edge — the same "remove the vertex you
// just consumed, continue from its neighbor" shape as the teacher's
// algorithms.BFS/DFS walkers, but driven by incident-edge weight instead of
// traversal order.
//
// Approximation ratio: at least 1/2 of the optimum (§4.5).
package pathgrowing

import (
	"sort"

	"github.com/jonasdoubleyou/matching/adjindex"
	"github.com/jonasdoubleyou/matching/matcher"
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/trace"
)

// Variant selects between the standard and patched path-growing matcher.
type Variant int

const (
	// Standard returns whichever of M1, M2 has higher total score overall,
	// computed once after all walks finish.
	Standard Variant = iota
	// Patched compares M1 vs M2 at the end of each walk, commits the
	// winner's edges to a running result, then clears both before the
	// next walk.
	Patched
)

// Match runs the path-growing matcher synchronously.
func Match(g *matchgraph.Graph, variant Variant, sink trace.Sink) *matchgraph.Matching {
	return matcher.RunToCompletion(New(g, variant, sink))
}

// New returns a lazy Iterator for the path-growing matcher. One step is
// emitted per edge added to either candidate matching during a walk.
func New(g *matchgraph.Graph, variant Variant, sink trace.Sink) matcher.Iterator {
	sink = trace.Or(sink)
	idx := adjindex.Build(g, adjindex.Undirected, sink)

	return &iterator{
		g:        g,
		sink:     sink,
		idx:      idx,
		variant:  variant,
		nextRoot: 0,
		current:  -1,
		m1:       make([]int, 0),
		m2:       make([]int, 0),
		result:   make([]int, 0),
	}
}

type iterator struct {
	g        *matchgraph.Graph
	sink     trace.Sink
	idx      *adjindex.Index
	variant  Variant
	nextRoot int
	current  int // vertex the active walk is standing on, or -1 if no walk in progress
	m1, m2   []int
	result   []int
	done     bool
}

func (it *iterator) Next() bool {
	if it.done {
		return false
	}

	for {
		if it.current < 0 {
			if !it.advanceToNextRoot() {
				it.finish()
				return false
			}
		}

		if it.stepWalk() {
			it.sink.Step("pathgrowing.walk")
			it.sink.Commit()
			return true
		}
		// Walk ended with no edge added this call; loop to start the next
		// root (or finish) without surfacing an empty step.
	}
}

// advanceToNextRoot finds the next input vertex that still has incident
// edges in the index and starts a walk there. Returns false once no
// vertex is left to start from.
func (it *iterator) advanceToNextRoot() bool {
	for it.nextRoot < it.g.VertexCount() {
		v := it.nextRoot
		it.nextRoot++
		if it.idx.Contains(v) {
			it.current = v
			it.sink.CurrentNode(v)
			return true
		}
	}
	return false
}

// stepWalk performs one iteration of the innermost walk loop (§4.5 steps
// 1-4): pick the heaviest incident edge of the current vertex, assign it
// to the shorter candidate matching, remove the current vertex, and move
// to the edge's other endpoint. Returns true if an edge was added.
func (it *iterator) stepWalk() bool {
	edges := it.idx.IncidentEdges(it.current)
	if len(edges) == 0 {
		it.current = -1
		it.endWalk()
		return false
	}

	heaviest := pickHeaviest(it.g, edges)
	e := it.g.Edge(heaviest)

	if len(it.m1) <= len(it.m2) {
		it.m1 = append(it.m1, heaviest)
	} else {
		it.m2 = append(it.m2, heaviest)
	}
	it.sink.PickEdge(heaviest, "path")

	next := e.Other(it.current)
	it.idx.Remove(it.current)
	it.current = -1
	if it.idx.Contains(next) {
		it.current = next
		it.sink.CurrentNode(next)
	} else {
		it.endWalk()
	}
	return true
}

func (it *iterator) endWalk() {
	if it.variant == Patched {
		it.commitPatchedWinner()
	}
}

func (it *iterator) commitPatchedWinner() {
	if scoreOf(it.g, it.m1) >= scoreOf(it.g, it.m2) {
		it.result = append(it.result, it.m1...)
	} else {
		it.result = append(it.result, it.m2...)
	}
	it.m1 = it.m1[:0]
	it.m2 = it.m2[:0]
}

func (it *iterator) finish() {
	it.done = true
	if it.variant == Standard {
		if scoreOf(it.g, it.m1) >= scoreOf(it.g, it.m2) {
			it.result = it.m1
		} else {
			it.result = it.m2
		}
	}
}

func (it *iterator) Result() (*matchgraph.Matching, bool) {
	if !it.done {
		return nil, false
	}
	return matchgraph.NewMatching(it.g, it.result), true
}

// pickHeaviest returns the edge index among edges with the greatest
// weight, tie-breaking by insertion order (lowest index).
func pickHeaviest(g *matchgraph.Graph, edges []int) int {
	sorted := append([]int(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return g.Edge(sorted[i]).Weight > g.Edge(sorted[j]).Weight
	})
	return sorted[0]
}

func scoreOf(g *matchgraph.Graph, edgeIndices []int) int64 {
	var total int64
	for _, idx := range edgeIndices {
		total += g.Edge(idx).Weight
	}
	return total
}
