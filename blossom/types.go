// Package blossom computes an optimal maximum-weight matching on a general
// undirected graph using Edmonds' blossom method with primal-dual slacks,
// refined along the lines of Galil's exposition (O(|V|^3)). It is the
// technically dense counterpart to the module's other matchers (the
// greedy, pathgrowing and treegrowing heuristics and the capped exhaustive
// naive search), the only one guaranteed optimal on every well-formed
// input.
//
// Grounded on the explicit placeholder the teacher pack left for this
// exact algorithm (tsp.blossomMatch / tsp.ErrMatchingNotImplemented in
// tsp/matching.go): "A Blossom placeholder is provided and returns a
// strict sentinel without mutating inputs." This package is that
// placeholder's real implementation, generalized from minimum-weight
// perfect matching on an odd-degree vertex set to maximum-weight matching
// on a general graph.
package blossom

import "errors"

// Sentinel errors. Per §7, an internal inconsistency detected while
// running the algorithm is a bug, not an operational error; those paths
// panic rather than return one of these.
var (
	// ErrVerificationFailed is wrapped by every error verifyDual reports when
	// the primal-dual optimality conditions do not hold on the returned
	// matching. With Options.VerifyDual enabled, the matcher panics with
	// that error.
	ErrVerificationFailed = errors.New("blossom: dual feasibility verification failed")
)

// label values per the internal data model (§4.8). labelBreadcrumb is the
// temporary value scanBlossom uses to mark a blossom already visited
// during the current common-ancestor walk; it is never visible outside
// scanBlossom's own call.
const (
	labelFree       = 0
	labelS          = 1
	labelT          = 2
	labelBreadcrumb = 5
)

const noEndpoint = -1
const noEdge = -1
const noBlossom = -1

// Options configures the blossom matcher.
type Options struct {
	// VerifyDual enables the debug-only dual feasibility / complementary
	// slackness / full-blossom verifier after the algorithm terminates.
	// Disabled by default, per §4.8 "disabled for production".
	VerifyDual bool
}

// DefaultOptions returns Options{VerifyDual: false}.
func DefaultOptions() Options {
	return Options{VerifyDual: false}
}

// state holds every table of the internal data model (§4.8), sized once at
// matcher entry and discarded at return — no cross-run state survives.
type state struct {
	n        int // |V|
	edges    []edgeView
	endpoint []int   // endpoint(p) -> vertex, size 2*|E|
	neighend [][]int // per-vertex list of endpoints reaching that vertex's edges

	mate      []int // per vertex: matched endpoint, or noEndpoint
	label     []int // per node (vertex or blossom id), size 2n
	labelend  []int // per node: endpoint through which label was acquired, or noEndpoint
	inblossom []int // per vertex: top-level blossom containing it

	blossomparent []int   // per node: immediate parent blossom, or noBlossom
	blossomchilds [][]int // per non-trivial blossom: ordered children, base first
	blossombase   []int   // per node: base vertex
	blossomendps  [][]int // per non-trivial blossom: endpoints linking consecutive children

	bestedge         []int   // per node: least-slack edge to an external S-node, or noEdge
	blossombestedges [][]int // per non-trivial top-level S-blossom: cached candidate edges

	unusedblossoms []int // free blossom ids in [n, 2n)
	dualvar        []int64
	allowedge      []bool
	queue          []int

	maxWeight int64
}

// edgeView is the algorithm's internal view of an input edge: endpoints and
// weight, doubled nowhere (weight stays the true edge weight; dualvar is
// the doubled quantity, per §4.8's slack formula).
type edgeView struct {
	i, j   int
	weight int64
}
