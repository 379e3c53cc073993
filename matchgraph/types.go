// Package matchgraph defines the input and output types shared by every
// matching algorithm in this module: Vertex, Edge, Graph, and Matching.
//
// A Graph is immutable once constructed via New: no method mutates its
// vertex or edge set. Matchers treat it as read-only and allocate all of
// their own bookkeeping from a fresh arena per call.
package matchgraph

import "errors"

// Sentinel errors returned by New and Verify.
var (
	// ErrSelfLoop indicates an edge whose endpoints are equal.
	ErrSelfLoop = errors.New("matchgraph: self-loop edges are not allowed")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("matchgraph: edge weight must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, vertexCount).
	ErrVertexOutOfRange = errors.New("matchgraph: edge endpoint out of range")

	// ErrDuplicateEdge indicates two edges connect the same unordered pair of vertices.
	ErrDuplicateEdge = errors.New("matchgraph: duplicate edge between the same pair of vertices")

	// ErrVertexUsedTwice indicates a matching invariant violation: a vertex
	// appears as an endpoint of more than one matching edge.
	ErrVertexUsedTwice = errors.New("matchgraph: vertex appears in more than one matching edge")

	// ErrForeignEdge indicates a matching references an edge index outside the input graph.
	ErrForeignEdge = errors.New("matchgraph: matching references an edge not present in the input graph")
)

// Vertex is an opaque identity exposing a small, dense, non-negative id.
// Equality is by Id; Vertex carries no other semantics.
type Vertex struct {
	Id int
}

// Edge is an ordered triple (From, To, Weight). The graph is undirected:
// (a,b,w) and (b,a,w) denote the same edge. From != To is required and
// Weight must be non-negative; both are enforced by New.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Other returns the endpoint of e that is not v.
// Panics if v is not an endpoint of e — an internal-inconsistency condition,
// since callers only ever invoke this with an endpoint they themselves resolved.
func (e Edge) Other(v int) int {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		panic("matchgraph: Other called with a non-endpoint vertex")
	}
}

// Graph is a finite, insertion-ordered pair of vertices and edges.
// Vertex ids are dense integers in [0, VertexCount). Graph is immutable
// after New returns; matchers never mutate it.
type Graph struct {
	vertexCount int
	edges       []Edge
}

// New validates edges and constructs an immutable Graph over vertexCount
// densely-ided vertices. It rejects self-loops, negative weights,
// out-of-range endpoints, and duplicate unordered pairs.
func New(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrVertexOutOfRange
	}

	seen := make(map[[2]int]struct{}, len(edges))
	out := make([]Edge, len(edges))
	for i, e := range edges {
		if e.From == e.To {
			return nil, ErrSelfLoop
		}
		if e.Weight < 0 {
			return nil, ErrNegativeWeight
		}
		if e.From < 0 || e.From >= vertexCount || e.To < 0 || e.To >= vertexCount {
			return nil, ErrVertexOutOfRange
		}
		key := unorderedKey(e.From, e.To)
		if _, dup := seen[key]; dup {
			return nil, ErrDuplicateEdge
		}
		seen[key] = struct{}{}
		out[i] = e
	}

	return &Graph{vertexCount: vertexCount, edges: out}, nil
}

func unorderedKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return g.vertexCount }

// Vertices returns the graph's vertices in id order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, g.vertexCount)
	for i := range out {
		out[i] = Vertex{Id: i}
	}
	return out
}

// Edges returns the input edges in their original insertion order.
// The returned slice must not be mutated by callers; it aliases g's storage.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Edge returns the edge at index idx.
func (g *Graph) Edge(idx int) Edge {
	return g.edges[idx]
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Matching is an ordered sequence of edge indices into the input graph
// satisfying the matching invariant: no vertex is an endpoint of more than
// one selected edge. EdgeIndices preserves input edge identity rather than
// synthesizing copies (Design Notes: "Graph entity identity").
type Matching struct {
	graph        *Graph
	EdgeIndices  []int
}

// NewMatching wraps a slice of edge indices from g into a Matching without
// validating the matching invariant; callers that build a matching
// incrementally and validate at the end (e.g. via Verify) use this.
func NewMatching(g *Graph, edgeIndices []int) *Matching {
	return &Matching{graph: g, EdgeIndices: edgeIndices}
}

// Edges resolves EdgeIndices back into Edge values.
func (m *Matching) Edges() []Edge {
	out := make([]Edge, len(m.EdgeIndices))
	for i, idx := range m.EdgeIndices {
		out[i] = m.graph.Edge(idx)
	}
	return out
}

// Score returns the sum of the matching's edge weights.
func (m *Matching) Score() int64 {
	var total int64
	for _, idx := range m.EdgeIndices {
		total += m.graph.Edge(idx).Weight
	}
	return total
}

// Verify checks the matching invariant (§3): every output edge must be an
// input edge of g by index identity, and no vertex may appear as an
// endpoint of more than one selected edge. It is the post-hoc validity
// check the runner applies to every matcher's result.
func Verify(g *Graph, m *Matching) error {
	used := make(map[int]struct{}, 2*len(m.EdgeIndices))
	for _, idx := range m.EdgeIndices {
		if idx < 0 || idx >= len(g.edges) {
			return ErrForeignEdge
		}
		e := g.edges[idx]
		for _, v := range [2]int{e.From, e.To} {
			if _, dup := used[v]; dup {
				return ErrVertexUsedTwice
			}
			used[v] = struct{}{}
		}
	}
	return nil
}
