package blossom

// mod returns a non-negative representative of a mod m (m > 0), since Go's
// % can return negative results for negative a.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func indexOfInt(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	panic("blossom: internal inconsistency: child not found in parent's child list")
}

// addBlossom allocates a fresh blossom over the cycle discovered by edge k
// connecting v=edges[k].i (inside an S-ancestor walk from v) and
// w=edges[k].j, with common ancestor base (§4.8 add_blossom). It retraces
// from v and from w back to base, records the interconnecting endpoints in
// base-first cyclic order, relabels every contained vertex into the new
// blossom, and seeds blossombestedges for future delta computations.
func (s *state) addBlossom(base, k int) {
	v := s.edges[k].i
	w := s.edges[k].j
	bb := s.inblossom[base]
	bv := s.inblossom[v]
	bw := s.inblossom[w]

	b := s.unusedblossoms[len(s.unusedblossoms)-1]
	s.unusedblossoms = s.unusedblossoms[:len(s.unusedblossoms)-1]

	s.blossombase[b] = base
	s.blossomparent[b] = noBlossom
	s.blossomparent[bb] = b

	var path []int
	var endps []int

	for bv != bb {
		s.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelend[bv])
		v = s.endpoint[s.labelend[bv]]
		bv = s.inblossom[v]
	}
	// Base comes first; the walk from v collected ancestors in reverse
	// (nearest-to-v first), so flip before appending base.
	reverseInts(path)
	reverseInts(endps)
	path = append([]int{bb}, path...)
	endps = append(endps, 2*k)

	for bw != bb {
		s.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelend[bw]^1)
		w = s.endpoint[s.labelend[bw]]
		bw = s.inblossom[w]
	}

	s.blossomchilds[b] = path
	s.blossomendps[b] = endps

	s.label[b] = labelS
	s.labelend[b] = s.labelend[bb]
	s.dualvar[b] = 0

	for _, leaf := range s.blossomLeaves(b) {
		if s.label[s.inblossom[leaf]] == labelT {
			s.queue = append(s.queue, leaf)
		}
		s.inblossom[leaf] = b
	}

	bestedgeto := make([]int, 2*s.n)
	for i := range bestedgeto {
		bestedgeto[i] = noEdge
	}

	for _, bch := range path {
		var candidateLists [][]int
		if s.blossombestedges[bch] == nil {
			for _, leaf := range s.blossomLeaves(bch) {
				edgeIdx := make([]int, 0, len(s.neighend[leaf]))
				for _, p := range s.neighend[leaf] {
					edgeIdx = append(edgeIdx, p/2)
				}
				candidateLists = append(candidateLists, edgeIdx)
			}
		} else {
			candidateLists = [][]int{s.blossombestedges[bch]}
		}

		for _, list := range candidateLists {
			for _, ek := range list {
				i, j := s.edges[ek].i, s.edges[ek].j
				if s.inblossom[j] == b {
					i, j = j, i
				}
				bj := s.inblossom[j]
				if bj != b && s.label[bj] == labelS &&
					(bestedgeto[bj] == noEdge || s.slack(ek) < s.slack(bestedgeto[bj])) {
					bestedgeto[bj] = ek
				}
			}
		}

		s.blossombestedges[bch] = nil
		s.bestedge[bch] = noEdge
	}

	var kept []int
	for _, ek := range bestedgeto {
		if ek != noEdge {
			kept = append(kept, ek)
		}
	}
	s.blossombestedges[b] = kept
	s.bestedge[b] = noEdge
	for _, ek := range kept {
		if s.bestedge[b] == noEdge || s.slack(ek) < s.slack(s.bestedge[b]) {
			s.bestedge[b] = ek
		}
	}
}

func reverseInts(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// expandBlossom dissolves blossom b back into its children (§4.8
// expand_blossom). Each child is promoted to top-level; a child that is
// itself a zero-dual blossom is recursively expanded when this is an
// end-of-stage expansion. When expanding a T-blossom mid-stage, the path
// of children from the entry point back to the base must be relabeled
// alternately T, S, T, ... with the connecting edges marked allowable, and
// any remaining child with an already-reached interior vertex is promoted
// to T; b is then returned to the free list.
func (s *state) expandBlossom(b int, endstage bool) {
	for _, c := range s.blossomchilds[b] {
		s.blossomparent[c] = noBlossom
		if c < s.n {
			s.inblossom[c] = c
		} else if endstage && s.dualvar[c] == 0 {
			s.expandBlossom(c, endstage)
		} else {
			for _, v := range s.blossomLeaves(c) {
				s.inblossom[v] = c
			}
		}
	}

	if !endstage && s.label[b] == labelT {
		children := s.blossomchilds[b]
		endps := s.blossomendps[b]
		k := len(children)

		entryVertex := s.endpoint[s.labelend[b]^1]
		entry := s.inblossom[entryVertex]
		entryIdx := indexOfInt(children, entry)
		j := entryIdx

		jstep := -1
		if j%2 != 0 {
			jstep = 1
		}

		// Walk from the entry child to the base (index 0). assignLabel's
		// own T->S recursion (it promotes a T-blossom's base's mate to S)
		// produces the alternating T, S, T, ... pattern along the way, so
		// one assignLabel call per child on the path suffices.
		for j != 0 {
			var connIdx int
			var nearVertex, farVertex int
			if jstep == -1 {
				connIdx = mod(j-1, k)
				nearVertex = s.endpoint[endps[connIdx]^1] // in children[j]
				farVertex = s.endpoint[endps[connIdx]]    // in children[j-1]
			} else {
				connIdx = mod(j, k)
				nearVertex = s.endpoint[endps[connIdx]] // in children[j]
				farVertex = s.endpoint[endps[connIdx]^1]
			}

			s.label[nearVertex] = labelFree
			s.label[farVertex] = labelFree
			s.assignLabel(farVertex, labelT, endps[connIdx]^1)
			s.allowedge[endps[connIdx]/2] = true

			j = mod(j+jstep, k)
		}

		for idx := 0; idx < k; idx++ {
			if idx == entryIdx {
				continue
			}
			bch := children[idx]
			if s.label[bch] == labelS {
				continue
			}
			for _, v := range s.blossomLeaves(bch) {
				if s.label[v] != labelFree {
					s.label[v] = labelFree
					s.assignLabel(v, labelT, s.labelend[v])
					break
				}
			}
		}
	}

	s.label[b] = labelFree
	s.labelend[b] = noEndpoint
	s.blossomchilds[b] = nil
	s.blossomendps[b] = nil
	s.blossombase[b] = noBlossom
	s.blossombestedges[b] = nil
	s.bestedge[b] = noEdge
	s.unusedblossoms = append(s.unusedblossoms, b)
}
