// Package naive implements the exhaustive exact matcher (§4.6) used as an
// oracle on small graphs: above a configurable vertex cap it returns an
// empty matching and a trace note, below it, it recurses over vertices in
// order, either skipping one or pairing it with an unused neighbor, and
// keeps the best-scoring complete assignment — the same per-vertex
// recursive choice structure as the teacher's algorithms.DFS traversal,
// adapted from "visit a neighbor" to "try pairing with a neighbor, or
// don't".
//
// Exact but exponential; guarded by DefaultCap (50), matching the
// reference implementation's cap.
package naive

import (
	"github.com/jonasdoubleyou/matching/adjindex"
	"github.com/jonasdoubleyou/matching/matcher"
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/trace"
)

// DefaultCap is the reference vertex-count ceiling above which the naive
// matcher refuses to run and returns an empty matching (§4.6, §7).
const DefaultCap = 50

// Options configures the naive matcher.
type Options struct {
	// Cap is the maximum vertex count the matcher will attempt. Above Cap,
	// Match returns an empty matching and emits a trace message rather
	// than run exponential search.
	Cap int
}

// DefaultOptions returns Options{Cap: DefaultCap}.
func DefaultOptions() Options {
	return Options{Cap: DefaultCap}
}

// Match runs the naive matcher synchronously with DefaultOptions.
func Match(g *matchgraph.Graph, sink trace.Sink) *matchgraph.Matching {
	return MatchWithOptions(g, DefaultOptions(), sink)
}

// MatchWithOptions runs the naive matcher synchronously with the given
// Options.
func MatchWithOptions(g *matchgraph.Graph, opts Options, sink trace.Sink) *matchgraph.Matching {
	return matcher.RunToCompletion(New(g, opts, sink))
}

// New returns a lazy Iterator for the naive matcher with the given Options.
func New(g *matchgraph.Graph, opts Options, sink trace.Sink) matcher.Iterator {
	sink = trace.Or(sink)

	if g.VertexCount() > opts.Cap {
		sink.Message("naive: vertex count exceeds cap, returning empty matching")
		return &iterator{g: g, done: true, best: nil}
	}

	idx := adjindex.Build(g, adjindex.Undirected, sink)
	s := &search{
		g:        g,
		idx:      idx,
		sink:     sink,
		used:     make([]bool, g.VertexCount()),
		current:  make([]int, 0, g.VertexCount()/2),
		bestEdge: nil,
	}
	return &iterator{g: g, search: s}
}

type iterator struct {
	g      *matchgraph.Graph
	search *search
	done   bool
	best   []int
}

func (it *iterator) Next() bool {
	if it.done {
		return false
	}
	it.done = true
	if it.search != nil {
		it.search.sink.Step("naive.enumerate")
		it.search.run(0)
		it.best = it.search.bestEdge
		it.search.sink.Commit()
	}
	return true
}

func (it *iterator) Result() (*matchgraph.Matching, bool) {
	if !it.done {
		return nil, false
	}
	if it.best == nil {
		return matchgraph.NewMatching(it.g, nil), true
	}
	return matchgraph.NewMatching(it.g, it.best), true
}

// search holds the exponential-search state for one Match call. It
// explores, for each vertex in order, either skipping it or pairing it
// with one of its unused neighbors, keeping the best-scoring complete
// assignment found (§4.6).
type search struct {
	g         *matchgraph.Graph
	idx       *adjindex.Index
	sink      trace.Sink
	used      []bool
	current   []int
	currScore int64
	bestEdge  []int
	bestScore int64
}

// run explores vertex v onward. Vertices below v have already been
// decided (skipped, or paired and thus marked used).
func (s *search) run(v int) {
	if v == s.g.VertexCount() {
		if s.bestEdge == nil || s.currScore > s.bestScore {
			s.bestEdge = append([]int(nil), s.current...)
			s.bestScore = s.currScore
		}
		return
	}

	if s.used[v] {
		s.run(v + 1)
		return
	}

	// Option 1: skip v.
	s.run(v + 1)

	// Option 2: pair v with each unused neighbor.
	for _, edgeIdx := range s.idx.IncidentEdges(v) {
		e := s.g.Edge(edgeIdx)
		w := e.Other(v)
		if s.used[w] {
			continue
		}
		s.used[v] = true
		s.used[w] = true
		s.current = append(s.current, edgeIdx)
		s.currScore += e.Weight

		s.run(v + 1)

		s.currScore -= e.Weight
		s.current = s.current[:len(s.current)-1]
		s.used[v] = false
		s.used[w] = false
	}
}
