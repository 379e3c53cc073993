// Package mission generates random benchmark graphs for the matcher suite
// (§6 "Benchmark/random-mission collaborator"): iterate every unordered
// vertex pair, include it as an edge with probability edgeRatePercent/100,
// and draw a uniform integer weight for each included edge.
//
// Grounded on the teacher's tsp package RNG discipline (tsp/rng.go's
// rngFromSeed: "same seed => identical results across platforms", no
// time-based sources) and on builder.RandomSparse's Erdős–Rényi trial
// order (ascending i, then ascending j, one Bernoulli trial per pair) —
// the same sampling model, generalized from builder's graph-mutation API
// to this module's immutable matchgraph.Graph.
package mission

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jonasdoubleyou/matching/matchgraph"
)

// ErrInvalidEdgeRate is returned when edgeRatePercent falls outside [0, 100].
var ErrInvalidEdgeRate = errors.New("mission: edge rate percent must be in [0, 100]")

// ErrNegativeNodeCount is returned when nodeCount is negative.
var ErrNegativeNodeCount = errors.New("mission: node count must be non-negative")

// maxWeight bounds the uniform weight distribution: weights are drawn from
// [0, maxWeight), per §6.
const maxWeight = 1000

// defaultSeed mirrors the teacher's tsp.defaultRNGSeed convention: seed 0
// maps to a fixed, stable non-zero seed rather than an unseeded source, so
// "seed 0" remains reproducible instead of accidentally meaning "random".
const defaultSeed int64 = 1

// Generate produces a random graph over nodeCount vertices, including each
// unordered pair independently with probability edgeRatePercent/100 and a
// weight drawn uniformly from [0, 1000). The trial order is deterministic
// (i ascending, then j ascending) so a fixed seed always reproduces the
// same graph regardless of host or platform.
func Generate(nodeCount int, edgeRatePercent float64, seed int64) (*matchgraph.Graph, error) {
	if nodeCount < 0 {
		return nil, ErrNegativeNodeCount
	}
	if edgeRatePercent < 0 || edgeRatePercent > 100 {
		return nil, ErrInvalidEdgeRate
	}

	rng := rngFromSeed(seed)
	p := edgeRatePercent / 100

	var edges []matchgraph.Edge
	for i := 0; i < nodeCount; i++ {
		for j := i + 1; j < nodeCount; j++ {
			if rng.Float64() < p {
				w := int64(rng.Intn(maxWeight))
				edges = append(edges, matchgraph.Edge{From: i, To: j, Weight: w})
			}
		}
	}

	g, err := matchgraph.New(nodeCount, edges)
	if err != nil {
		return nil, fmt.Errorf("mission: generated graph rejected: %w", err)
	}
	return g, nil
}

// rngFromSeed returns a deterministic *rand.Rand, per the teacher's
// tsp.rngFromSeed policy: seed 0 maps to a fixed default rather than an
// unseeded source.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}
