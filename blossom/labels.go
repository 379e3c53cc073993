package blossom

// blossomLeaves returns the trivial (vertex) descendants of node b, in
// order. For a vertex, that is just itself.
func (s *state) blossomLeaves(b int) []int {
	if b < s.n {
		return []int{b}
	}
	var leaves []int
	for _, c := range s.blossomchilds[b] {
		leaves = append(leaves, s.blossomLeaves(c)...)
	}
	return leaves
}

// assignLabel gives node w (and its enclosing top-level blossom) label t,
// recording the endpoint p it was reached through. Labeling an S-node
// enqueues its leaves for scanning; labeling a T-node recursively assigns
// S to its base's mate, since a T-blossom's base is always matched.
func (s *state) assignLabel(w, t, p int) {
	b := s.inblossom[w]
	s.label[w] = t
	s.label[b] = t
	s.labelend[w] = p
	s.labelend[b] = p
	s.bestedge[w] = noEdge
	s.bestedge[b] = noEdge

	switch t {
	case labelS:
		s.queue = append(s.queue, s.blossomLeaves(b)...)
	case labelT:
		base := s.blossombase[b]
		if s.mate[base] < 0 {
			panic("blossom: internal inconsistency: T-blossom base is unmatched")
		}
		s.assignLabel(s.endpoint[s.mate[base]], labelS, s.mate[base]^1)
	}
}

// scanBlossom walks back from v and w in alternation through their
// S-ancestors (via labelend/mate), marking each as a temporary breadcrumb.
// The first blossom already carrying a breadcrumb is the nearest common
// ancestor; its base is the new blossom's base. If neither walk ever
// revisits the other's path before both reach a root, there is no common
// ancestor and the edge completes an augmenting path instead — reported
// by returning noBlossom.
func (s *state) scanBlossom(v, w int) int {
	var path []int
	base := noBlossom

	for v != noBlossom {
		b := s.inblossom[v]
		if s.label[b] == labelBreadcrumb {
			base = s.blossombase[b]
			break
		}
		path = append(path, b)
		s.label[b] = labelBreadcrumb
		if s.labelend[b] == noEndpoint {
			v = noBlossom
		} else {
			v = s.endpoint[s.labelend[b]]
			b = s.inblossom[v]
			v = s.endpoint[s.labelend[b]]
		}
		if w != noBlossom {
			v, w = w, v
		}
	}

	for _, b := range path {
		s.label[b] = labelS
	}
	return base
}
