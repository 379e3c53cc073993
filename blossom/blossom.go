package blossom

import (
	"github.com/jonasdoubleyou/matching/matcher"
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/trace"
)

// Match runs the blossom matcher synchronously with DefaultOptions.
func Match(g *matchgraph.Graph, sink trace.Sink) *matchgraph.Matching {
	return MatchWithOptions(g, DefaultOptions(), sink)
}

// MatchWithOptions runs the blossom matcher synchronously with the given
// Options.
func MatchWithOptions(g *matchgraph.Graph, opts Options, sink trace.Sink) *matchgraph.Matching {
	return matcher.RunToCompletion(New(g, opts, sink))
}

// New returns a lazy Iterator for the blossom matcher. One step is emitted
// per stage of the outer loop (§4.8, §9): a stage's substage may run many
// scan/delta rounds internally, but all of that work is folded into a
// single step, per Design Notes' guidance to collapse inner-loop
// granularity when a subroutine doesn't map cleanly onto single steps.
func New(g *matchgraph.Graph, opts Options, sink trace.Sink) matcher.Iterator {
	sink = trace.Or(sink)
	return &iterator{g: g, sink: sink, opts: opts, s: newState(g)}
}

type iterator struct {
	g          *matchgraph.Graph
	sink       trace.Sink
	opts       Options
	s          *state
	stage      int
	terminated bool
	done       bool
}

func (it *iterator) Next() bool {
	if it.done {
		return false
	}
	if it.terminated || it.stage >= it.s.n {
		it.done = true
		if it.opts.VerifyDual {
			if err := verifyDual(it.s); err != nil {
				panic(err)
			}
		}
		return false
	}

	it.sink.Step("blossom.stage")
	progress := it.s.runStage()
	it.stage++
	it.sink.Data("stage", it.stage)
	it.sink.Commit()

	if !progress {
		it.terminated = true
	}
	return true
}

func (it *iterator) Result() (*matchgraph.Matching, bool) {
	if !it.done {
		return nil, false
	}
	return it.s.extractMatching(it.g), true
}

// newState allocates and initializes the internal data model (§4.8
// "Initial state"): every vertex starts as an unmatched trivial top-level
// blossom, vertex duals at maxweight, and every cache empty.
func newState(g *matchgraph.Graph) *state {
	n := g.VertexCount()
	rawEdges := g.Edges()
	m := len(rawEdges)

	s := &state{
		n:        n,
		edges:    make([]edgeView, m),
		endpoint: make([]int, 2*m),
		neighend: make([][]int, n),

		mate:      make([]int, n),
		label:     make([]int, 2*n),
		labelend:  make([]int, 2*n),
		inblossom: make([]int, n),

		blossomparent: make([]int, 2*n),
		blossomchilds: make([][]int, 2*n),
		blossombase:   make([]int, 2*n),
		blossomendps:  make([][]int, 2*n),

		bestedge:         make([]int, 2*n),
		blossombestedges: make([][]int, 2*n),

		unusedblossoms: make([]int, 0, n),
		dualvar:        make([]int64, 2*n),
		allowedge:      make([]bool, m),
	}

	var maxWeight int64
	for k, e := range rawEdges {
		s.edges[k] = edgeView{i: e.From, j: e.To, weight: e.Weight}
		s.endpoint[2*k] = e.From
		s.endpoint[2*k+1] = e.To
		s.neighend[e.From] = append(s.neighend[e.From], 2*k+1)
		s.neighend[e.To] = append(s.neighend[e.To], 2*k)
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}
	s.maxWeight = maxWeight

	for v := 0; v < n; v++ {
		s.mate[v] = noEndpoint
		s.inblossom[v] = v
		s.blossombase[v] = v
		s.dualvar[v] = maxWeight
	}
	for b := 0; b < 2*n; b++ {
		s.blossomparent[b] = noBlossom
		s.bestedge[b] = noEdge
	}
	for b := n; b < 2*n; b++ {
		s.blossombase[b] = noBlossom
		s.unusedblossoms = append(s.unusedblossoms, b)
	}

	return s
}

func (s *state) slack(k int) int64 {
	e := s.edges[k]
	return s.dualvar[e.i] + s.dualvar[e.j] - 2*e.weight
}

// runStage executes one full stage (§4.8 "Stage structure"): reset, label
// every unmatched top-level node S, run the substage to either augmentation
// or termination, then expand every top-level S-blossom with zero dual.
// Returns false when the substage hit a type-1 delta, meaning no further
// stage can improve the matching.
func (s *state) runStage() bool {
	for i := range s.label {
		s.label[i] = labelFree
	}
	for i := range s.bestedge {
		s.bestedge[i] = noEdge
	}
	for b := s.n; b < 2*s.n; b++ {
		s.blossombestedges[b] = nil
	}
	for i := range s.allowedge {
		s.allowedge[i] = false
	}
	s.queue = s.queue[:0]

	for v := 0; v < s.n; v++ {
		if s.mate[v] == noEndpoint && s.label[s.inblossom[v]] == labelFree {
			s.assignLabel(v, labelS, noEndpoint)
		}
	}

	terminated := false
	for {
		if s.scanPhase() {
			break // augmenting path found; stage succeeds
		}
		if s.deltaPhase() {
			terminated = true
			break
		}
	}

	for b := s.n; b < 2*s.n; b++ {
		if s.blossombase[b] != noBlossom && s.blossomparent[b] == noBlossom &&
			s.label[b] == labelS && s.dualvar[b] == 0 {
			s.expandBlossom(b, true)
		}
	}

	return !terminated
}

// scanPhase is Phase A (§4.8): drain the queue of newly discovered S-nodes,
// examining each incident edge. Returns true if an augmenting path was
// found and applied.
func (s *state) scanPhase() bool {
	for len(s.queue) > 0 {
		v := s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]

		for _, p := range s.neighend[v] {
			k := p / 2
			w := s.endpoint[p]
			if s.inblossom[v] == s.inblossom[w] {
				continue
			}

			var kslack int64
			if !s.allowedge[k] {
				kslack = s.slack(k)
				if kslack <= 0 {
					s.allowedge[k] = true
				}
			}

			if s.allowedge[k] {
				bw := s.inblossom[w]
				switch {
				case s.label[bw] == labelFree:
					s.assignLabel(w, labelT, p^1)
				case s.label[bw] == labelS:
					base := s.scanBlossom(v, w)
					if base != noBlossom {
						s.addBlossom(base, k)
					} else {
						s.augmentMatching(k)
						return true
					}
				case s.label[w] == labelFree:
					s.label[w] = labelT
					s.labelend[w] = p ^ 1
				}
			} else if s.label[s.inblossom[w]] == labelS {
				bv := s.inblossom[v]
				if s.bestedge[bv] == noEdge || kslack < s.slack(s.bestedge[bv]) {
					s.bestedge[bv] = k
				}
			} else if s.label[w] == labelFree {
				if s.bestedge[w] == noEdge || kslack < s.slack(s.bestedge[w]) {
					s.bestedge[w] = k
				}
			}
		}
	}
	return false
}

// deltaPhase is Phase B (§4.8): compute the four candidate deltas, apply
// the smallest to every dual variable, and act according to its type.
// Returns true for a type-1 delta (global termination).
func (s *state) deltaPhase() bool {
	delta1 := s.dualvar[0]
	for v := 1; v < s.n; v++ {
		if s.dualvar[v] < delta1 {
			delta1 = s.dualvar[v]
		}
	}
	deltaType := 1
	delta := delta1

	var delta2Vertex = noBlossom
	for v := 0; v < s.n; v++ {
		if s.label[s.inblossom[v]] == labelFree && s.bestedge[v] != noEdge {
			sl := s.slack(s.bestedge[v])
			if delta2Vertex == noBlossom || sl < s.slack(s.bestedge[delta2Vertex]) {
				delta2Vertex = v
			}
		}
	}
	if delta2Vertex != noBlossom && s.slack(s.bestedge[delta2Vertex]) < delta {
		delta = s.slack(s.bestedge[delta2Vertex])
		deltaType = 2
	}

	var delta3Blossom = noBlossom
	for b := 0; b < 2*s.n; b++ {
		if s.blossomparent[b] == noBlossom && s.label[b] == labelS && s.bestedge[b] != noEdge {
			sl := s.slack(s.bestedge[b]) / 2
			if delta3Blossom == noBlossom || sl < s.slack(s.bestedge[delta3Blossom])/2 {
				delta3Blossom = b
			}
		}
	}
	if delta3Blossom != noBlossom && s.slack(s.bestedge[delta3Blossom])/2 < delta {
		delta = s.slack(s.bestedge[delta3Blossom]) / 2
		deltaType = 3
	}

	var delta4Blossom = noBlossom
	for b := s.n; b < 2*s.n; b++ {
		if s.blossombase[b] != noBlossom && s.blossomparent[b] == noBlossom && s.label[b] == labelT {
			if delta4Blossom == noBlossom || s.dualvar[b] < s.dualvar[delta4Blossom] {
				delta4Blossom = b
			}
		}
	}
	if delta4Blossom != noBlossom && s.dualvar[delta4Blossom] < delta {
		delta = s.dualvar[delta4Blossom]
		deltaType = 4
	}

	for v := 0; v < s.n; v++ {
		switch s.label[s.inblossom[v]] {
		case labelS:
			s.dualvar[v] -= delta
		case labelT:
			s.dualvar[v] += delta
		}
	}
	for b := s.n; b < 2*s.n; b++ {
		if s.blossombase[b] == noBlossom || s.blossomparent[b] != noBlossom {
			continue
		}
		switch s.label[b] {
		case labelS:
			s.dualvar[b] += delta
		case labelT:
			s.dualvar[b] -= delta
		}
	}

	switch deltaType {
	case 1:
		return true
	case 2:
		k := s.bestedge[delta2Vertex]
		s.allowedge[k] = true
		sNode := s.edges[k].i
		if sNode == delta2Vertex {
			sNode = s.edges[k].j
		}
		s.queue = append(s.queue, sNode)
	case 3:
		k := s.bestedge[delta3Blossom]
		s.allowedge[k] = true
		sNode := s.edges[k].i
		if s.inblossom[sNode] != delta3Blossom {
			sNode = s.edges[k].j
		}
		s.queue = append(s.queue, sNode)
	case 4:
		s.expandBlossom(delta4Blossom, false)
	}
	return false
}

// extractMatching recovers the input edges underlying the final mate[]
// table, deduping each matched pair once (§4.8 "Result extraction").
func (s *state) extractMatching(g *matchgraph.Graph) *matchgraph.Matching {
	seen := make(map[int]bool)
	var edgeIndices []int
	for v := 0; v < s.n; v++ {
		if s.mate[v] == noEndpoint {
			continue
		}
		k := s.mate[v] / 2
		if !seen[k] {
			seen[k] = true
			edgeIndices = append(edgeIndices, k)
		}
	}
	return matchgraph.NewMatching(g, edgeIndices)
}
