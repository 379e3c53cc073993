// Package runner drives a matcher's lazy step sequence (§4.9): a
// synchronous mode that pulls every step to completion, and a cooperative
// mode that consumes steps in bursts and yields to the Go scheduler between
// them, checking a context for cancellation the way the teacher's
// algorithms package checks ctx.Err() between BFS/DFS dequeues
// ("3. Check context cancellation before each dequeue.").
package runner

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/jonasdoubleyou/matching/matcher"
	"github.com/jonasdoubleyou/matching/matchgraph"
)

// DefaultMaxSteps is the reference step budget (§4.9).
const DefaultMaxSteps = 100_000_000

// DefaultBurstSize is the reference cooperative burst size (§4.9).
const DefaultBurstSize = 100_000

// Sentinel errors.
var (
	// ErrStepBudgetExceeded is a fatal runtime error (§7): the matcher did
	// not converge within MaxSteps.
	ErrStepBudgetExceeded = errors.New("runner: step budget exceeded")
	// ErrCancelled is returned by RunCooperative when ctx is cancelled
	// between bursts. No partial matching is returned alongside it.
	ErrCancelled = errors.New("runner: cancelled")
)

// Options configures a runner.
type Options struct {
	// MaxSteps bounds the synchronous run. Zero means DefaultMaxSteps.
	MaxSteps int
	// BurstSize bounds how many steps RunCooperative consumes before
	// checking ctx and yielding. Zero means DefaultBurstSize.
	BurstSize int
}

func (o Options) maxSteps() int {
	if o.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return o.MaxSteps
}

func (o Options) burstSize() int {
	if o.BurstSize <= 0 {
		return DefaultBurstSize
	}
	return o.BurstSize
}

// Result is the outcome of a completed run.
type Result struct {
	Matching   *matchgraph.Matching
	Steps      int
	Score      int64
	WallTimeMs int64
}

// RunSync pulls it to completion, verifies the result, and returns
// {matching, steps, score}. Fails with ErrStepBudgetExceeded if MaxSteps
// is exceeded first (§7 "step budget exceeded: fatal runtime error").
func RunSync(g *matchgraph.Graph, it matcher.Iterator, opts Options) (Result, error) {
	start := time.Now()
	steps := 0
	max := opts.maxSteps()

	for it.Next() {
		steps++
		if steps > max {
			return Result{}, ErrStepBudgetExceeded
		}
	}

	m, ok := it.Result()
	if !ok {
		panic("runner: internal inconsistency: iterator done but Result() not ready")
	}
	if err := matchgraph.Verify(g, m); err != nil {
		panic("runner: internal inconsistency: " + err.Error())
	}

	return Result{
		Matching:   m,
		Steps:      steps,
		Score:      m.Score(),
		WallTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// RunCooperative consumes steps in bursts of opts.BurstSize, checking ctx
// for cancellation between bursts (§4.9, §5 "Suspension points: exactly
// between two consecutive step-markers"). On cancellation it returns
// ErrCancelled and no partial matching. On completion it verifies the
// result exactly as RunSync does, so the two modes agree on steps and
// matching for identical input (§8 "Runner properties").
func RunCooperative(ctx context.Context, g *matchgraph.Graph, it matcher.Iterator, opts Options) (Result, error) {
	start := time.Now()
	steps := 0
	max := opts.maxSteps()
	burst := opts.burstSize()

	for {
		select {
		case <-ctx.Done():
			return Result{}, ErrCancelled
		default:
		}

		burstSteps := 0
		more := true
		for more && burstSteps < burst {
			more = it.Next()
			if !more {
				break
			}
			steps++
			burstSteps++
			if steps > max {
				return Result{}, ErrStepBudgetExceeded
			}
		}
		if !more {
			break
		}
		runtime.Gosched()
	}

	m, ok := it.Result()
	if !ok {
		panic("runner: internal inconsistency: iterator done but Result() not ready")
	}
	if err := matchgraph.Verify(g, m); err != nil {
		panic("runner: internal inconsistency: " + err.Error())
	}

	return Result{
		Matching:   m,
		Steps:      steps,
		Score:      m.Score(),
		WallTimeMs: time.Since(start).Milliseconds(),
	}, nil
}
