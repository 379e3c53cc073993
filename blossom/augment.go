package blossom

// augmentMatching flips the augmenting path discovered through edge k: walk
// outward from each of its two endpoints through nested S-blossoms via
// labelend, matching v to the endpoint that led to it as we go (§4.8
// augment_matching).
func (s *state) augmentMatching(k int) {
	v := s.edges[k].i
	w := s.edges[k].j

	s.augmentFromEndpoint(v, 2*k+1)
	s.augmentFromEndpoint(w, 2*k)
}

// augmentFromEndpoint walks outward from s (a vertex just matched via
// endpoint p, i.e. its mate becomes p), flipping the alternating path back
// to the root. At each S-blossom along the way it reshuffles the
// blossom's internal pairing via augmentBlossom so v becomes its new base.
func (s *state) augmentFromEndpoint(v, p int) {
	for {
		bs := s.inblossom[v]
		if bs >= s.n {
			s.augmentBlossom(bs, v)
		}
		s.mate[v] = p
		if s.labelend[bs] == noEndpoint {
			break
		}
		t := s.endpoint[s.labelend[bs]]
		bt := s.inblossom[t]
		v = s.endpoint[s.labelend[bt]]
		j := s.endpoint[s.labelend[bt]^1]
		if bt >= s.n {
			s.augmentBlossom(bt, j)
		}
		s.mate[j] = s.labelend[bt]
		p = s.labelend[bt] ^ 1
	}
}

// augmentBlossom reshuffles b's internal matching so that v becomes its
// new base. It recurses into the sub-blossom containing v first, then
// rotates the cyclic child list so v's side is at the front, matching
// each adjacent pair of children along the way and recursing into any
// non-trivial child that needs its own internal pairing fixed.
func (s *state) augmentBlossom(b, v int) {
	t := v
	for s.blossomparent[t] != b {
		t = s.blossomparent[t]
	}
	if t >= s.n {
		s.augmentBlossom(t, v)
	}

	children := s.blossomchilds[b]
	endps := s.blossomendps[b]
	k := len(children)

	i := indexOfInt(children, t)

	// Rotate the cycle so the child containing v leads; it keeps its
	// external mate (set by the caller) and the rest of the cycle — an
	// even number of children, since k is odd — pairs up consecutively.
	rotated := append(append([]int(nil), children[i:]...), children[:i]...)
	rotatedEndps := append(append([]int(nil), endps[i:]...), endps[:i]...)

	for m := 1; m+1 < k; m += 2 {
		left, right := rotated[m], rotated[m+1]
		p := rotatedEndps[m]

		if left >= s.n {
			s.augmentBlossom(left, s.endpoint[p])
		}
		if right >= s.n {
			s.augmentBlossom(right, s.endpoint[p^1])
		}
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	s.blossomchilds[b] = rotated
	s.blossomendps[b] = rotatedEndps
	s.blossombase[b] = v
}
