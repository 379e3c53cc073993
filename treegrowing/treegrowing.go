// Package treegrowing implements the tree-growing heuristic of §4.7: a DFS
// that grows an alternating tree and augments locally whenever entering an
// edge beats the best improvement found so far in its subtree.
//
// The recursive shape — mark visited, iterate neighbors in a fixed order,
// recurse, act on return — follows the teacher's algorithms.DFS walker
// (traverse(id, depth) recursing over unvisited neighbors); this package
// substitutes weight-descending neighbor order and an augmentation step for
// DFS's plain visit-and-record.
//
// Approximate; faster than the blossom matcher but weaker (§4.7).
package treegrowing

import (
	"sort"

	"github.com/jonasdoubleyou/matching/adjindex"
	"github.com/jonasdoubleyou/matching/matcher"
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/trace"
)

type label int

const (
	unlabeled label = iota
	visited
	chosen
)

// Match runs the tree-growing matcher synchronously.
func Match(g *matchgraph.Graph, sink trace.Sink) *matchgraph.Matching {
	return matcher.RunToCompletion(New(g, sink))
}

// New returns a lazy Iterator for the tree-growing matcher. One step is
// emitted per top-level call to grow_tree (i.e. per unvisited root vertex
// processed), per Design Notes' guidance to collapse per-inner-loop
// granularity to one step per outer-loop iteration.
func New(g *matchgraph.Graph, sink trace.Sink) matcher.Iterator {
	sink = trace.Or(sink)
	idx := adjindex.Build(g, adjindex.Undirected, sink)

	picked := make([]int, g.VertexCount())
	for i := range picked {
		picked[i] = -1
	}

	return &iterator{
		g:        g,
		sink:     sink,
		idx:      idx,
		label:    make([]label, g.VertexCount()),
		picked:   picked,
		nextRoot: 0,
	}
}

type iterator struct {
	g        *matchgraph.Graph
	sink     trace.Sink
	idx      *adjindex.Index
	label    []label
	picked   []int
	nextRoot int
	done     bool
}

func (it *iterator) Next() bool {
	if it.done {
		return false
	}
	for it.nextRoot < it.g.VertexCount() {
		v := it.nextRoot
		it.nextRoot++
		if it.label[v] != unlabeled {
			continue
		}
		for i := range it.picked {
			if it.label[i] == unlabeled {
				it.picked[i] = -1
			}
		}
		growTree(it, v, nil)
		it.sink.CurrentNode(v)
		it.sink.Step("treegrowing.grow")
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
	var edges []int
	for v, l := range it.label {
		if l == chosen && it.picked[v] >= 0 {
			edges = append(edges, it.picked[v])
		}
	}
	return matchgraph.NewMatching(it.g, edges), true
}

// growTree implements §4.7's grow_tree(node, path): mark node visited,
// examine its incident edges in weight-descending order, skip the edge
// back to the parent and edges to already-labeled vertices, recurse, and
// augment the child subtree whenever the entering edge's net improvement
// beats the best found so far. Returns the max improvement achievable at
// node.
func growTree(it *iterator, node int, path []int) int64 {
	it.label[node] = visited

	edges := append([]int(nil), it.idx.IncidentEdges(node)...)
	sort.SliceStable(edges, func(i, j int) bool {
		return it.g.Edge(edges[i]).Weight > it.g.Edge(edges[j]).Weight
	})

	var bestSoFar int64
	for _, edgeIdx := range edges {
		e := it.g.Edge(edgeIdx)
		next := e.Other(node)

		if len(path) > 0 && next == path[len(path)-1] {
			continue // edge back to the immediate parent
		}
		if it.label[next] != unlabeled {
			it.sink.Message("treegrowing: cycle detected")
			continue
		}

		sub := growTree(it, next, append(path, node))
		if e.Weight-sub > bestSoFar {
			augment(it, next)
			it.picked[node] = edgeIdx
			it.label[node] = chosen
			bestSoFar = e.Weight - sub
		}
	}

	return bestSoFar
}

// augment walks down from node while picked/label are set, flipping
// matched/unmatched edges along the alternating subpath (§4.7).
func augment(it *iterator, node int) {
	v := node
	for it.picked[v] >= 0 && it.label[v] != unlabeled {
		it.label[v] = visited
		edgeIdx := it.picked[v]
		next := it.g.Edge(edgeIdx).Other(v)
		it.label[next] = chosen
		v = next
	}
}
