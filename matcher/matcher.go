// Package matcher defines the uniform shape every matching algorithm in
// this module implements: a function from (graph, trace sink) to a lazy
// sequence of step-markers ending in a Matching.
//
// Design Notes translates the source's generator/coroutine into a
// pull-based iterator object: a state struct plus a Next operation. Most
// matchers in this module collapse their natural per-inner-loop steps to
// one step per outer-loop iteration (blossom stage or tree-growing call;
// naive emits a single step, while greedy and pathgrowing step per edge) —
// Design Notes notes this is correctness-preserving because step events
// carry no semantics, only visible progress.
package matcher

import (
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/trace"
)

// Iterator is a pull-based, single-use step sequence. Next advances by one
// step and reports whether the sequence has more steps; once Next returns
// false the sequence is done and Result returns the final matching.
// Calling Next after it has returned false is a programming error and its
// behavior is unspecified beyond continuing to report done.
type Iterator interface {
	// Next advances by one step, returning true if the run produced a
	// unit of visible progress and has not yet finished.
	Next() bool
	// Result returns the final matching. ok is false until Next has
	// returned false at least once (the run is not finished).
	Result() (m *matchgraph.Matching, ok bool)
}

// Func is the shape every matcher exposes: given a read-only graph and an
// optional trace sink, it returns a lazy Iterator. Implementations must be
// deterministic given identical inputs, independent of trace sink
// side-effects.
type Func func(g *matchgraph.Graph, sink trace.Sink) Iterator

// RunToCompletion drains it synchronously, returning the final matching.
// Used internally by tests and by the simplest runner path; production
// callers that need step counts or cancellation use package runner.
func RunToCompletion(it Iterator) *matchgraph.Matching {
	for it.Next() {
	}
	m, _ := it.Result()
	return m
}
