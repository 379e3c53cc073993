// Package greedy implements the edge-weight-descending matching heuristic
// (§4.4): sort edges by weight descending and add each one whose endpoints
// are both still free. It follows the sort-then-scan shape of the
// teacher's Kruskal MST (graph.Kruskal: sort.Slice by weight, then a single
// scan with a per-vertex membership test), substituting a used-vertex set
// for Kruskal's union-find since matching has no cycle condition to track,
// only a one-edge-per-vertex condition.
//
// Complexity: O(|E| log |E|). Not guaranteed optimal — the classic
// counterexample is a 3-edge path with the middle edge heaviest but the
// sum of the two outer edges greater.
package greedy

import (
	"sort"

	"github.com/jonasdoubleyou/matching/matcher"
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/trace"
)

// Match runs the greedy matcher synchronously and returns the resulting
// matching. Use New for the lazy, single-steppable form.
func Match(g *matchgraph.Graph, sink trace.Sink) *matchgraph.Matching {
	return matcher.RunToCompletion(New(g, sink))
}

// New returns a lazy Iterator for the greedy matcher. One step is emitted
// per edge considered, in sorted order.
func New(g *matchgraph.Graph, sink trace.Sink) matcher.Iterator {
	sink = trace.Or(sink)

	order := make([]int, g.EdgeCount())
	for i := range order {
		order[i] = i
	}
	edges := g.Edges()
	// Stable sort preserves input order among equal weights (§4.4 tie-break).
	sort.SliceStable(order, func(i, j int) bool {
		return edges[order[i]].Weight > edges[order[j]].Weight
	})

	return &iterator{
		g:     g,
		sink:  sink,
		order: order,
		used:  make(map[int]struct{}, g.VertexCount()),
		chose: make([]int, 0),
	}
}

type iterator struct {
	g     *matchgraph.Graph
	sink  trace.Sink
	order []int
	pos   int
	used  map[int]struct{}
	chose []int
	done  bool
}

func (it *iterator) Next() bool {
	if it.done {
		return false
	}
	for it.pos < len(it.order) {
		edgeIdx := it.order[it.pos]
		it.pos++
		e := it.g.Edge(edgeIdx)

		it.sink.CurrentEdge(edgeIdx)
		_, fromUsed := it.used[e.From]
		_, toUsed := it.used[e.To]
		if !fromUsed && !toUsed {
			it.used[e.From] = struct{}{}
			it.used[e.To] = struct{}{}
			it.chose = append(it.chose, edgeIdx)
			it.sink.PickEdge(edgeIdx, "chosen")
		}
		it.sink.Step("greedy.consider")
		it.sink.Commit()
		return true
	}
	it.done = true
	return false
}

func (it *iterator) Result() (*matchgraph.Matching, bool) {
	if !it.done {
		return nil, false
	}
	return matchgraph.NewMatching(it.g, it.chose), true
}
