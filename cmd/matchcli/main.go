// The matchcli program selects a matcher and a mission (a random graph
// generated from node count, edge rate and seed; there is no option to
// load edges from a file), runs the matcher to completion, and prints the
// resulting score, step count, and wall time. It is a minimal host
// program (§6 "CLI / host program: out of scope here; minimally a
// selector of matcher name and mission"), grounded on the teacher pack's
// stdlib-flag command style (e.g. dsp/window/cmd/leakage).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jonasdoubleyou/matching/blossom"
	"github.com/jonasdoubleyou/matching/greedy"
	"github.com/jonasdoubleyou/matching/matcher"
	"github.com/jonasdoubleyou/matching/matchgraph"
	"github.com/jonasdoubleyou/matching/mission"
	"github.com/jonasdoubleyou/matching/naive"
	"github.com/jonasdoubleyou/matching/pathgrowing"
	"github.com/jonasdoubleyou/matching/runner"
	"github.com/jonasdoubleyou/matching/trace"
	"github.com/jonasdoubleyou/matching/treegrowing"
)

func main() {
	matcherName := flag.String("matcher", "blossom", "matcher to run: greedy, pathgrowing, treegrowing, naive, blossom")
	nodeCount := flag.Int("nodes", 20, "mission node count")
	edgeRate := flag.Float64("edge-rate", 30, "mission edge rate percent, in [0, 100]")
	seed := flag.Int64("seed", 1, "mission RNG seed")
	flag.Parse()

	g, err := mission.Generate(*nodeCount, *edgeRate, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "matchcli:", err)
		os.Exit(1)
	}

	newIterator, err := resolveMatcher(*matcherName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "matchcli:", err)
		os.Exit(1)
	}

	res, err := runner.RunSync(g, newIterator(g, nil), runner.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "matchcli:", err)
		os.Exit(1)
	}

	fmt.Printf("matcher=%s nodes=%d edges=%d score=%d steps=%d wall_ms=%d\n",
		*matcherName, g.VertexCount(), g.EdgeCount(), res.Score, res.Steps, res.WallTimeMs)
}

func resolveMatcher(name string) (matcher.Func, error) {
	switch name {
	case "greedy":
		return greedy.New, nil
	case "pathgrowing":
		return func(g *matchgraph.Graph, sink trace.Sink) matcher.Iterator {
			return pathgrowing.New(g, pathgrowing.Standard, sink)
		}, nil
	case "treegrowing":
		return treegrowing.New, nil
	case "naive":
		return func(g *matchgraph.Graph, sink trace.Sink) matcher.Iterator {
			return naive.New(g, naive.DefaultOptions(), sink)
		}, nil
	case "blossom":
		return func(g *matchgraph.Graph, sink trace.Sink) matcher.Iterator {
			return blossom.New(g, blossom.DefaultOptions(), sink)
		}, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", name)
	}
}
