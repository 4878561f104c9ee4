package bench

import (
	"context"

	"github.com/dominators/domsbench/internal/dom"
	"github.com/dominators/domsbench/internal/graph"
	"github.com/dominators/domsbench/internal/telemetry"
	"github.com/dominators/domsbench/pkg/timing"
)

// RunStats is the result of timing one method against one graph, mirroring
// the fields dom.cpp's runTests prints to stdout.
type RunStats struct {
	Filename string
	Vertices int
	Arcs     int
	Density  float64
	Method   Method
	Reverse  bool
	Simplify bool

	TotalTime float64 // seconds
	MinTime   int     // seconds
	Inner     int
	Runs      int
	AvgTime   float64 // seconds
	AvgTimeMs float64
	AvgTimeUs float64

	Iterations   int
	SemiParent   int
	SemiParentF  float64
	Comparisons  int
	RComparisons float64

	// Idom holds the last computed immediate-dominator array, populated
	// only for methods where ProducesIdom(Method) is true.
	Idom []int32
}

// RunOnce times method against g until at least mintimeMs of wall-clock
// elapses, using clock for measurement so tests can substitute a
// timing.MockClock. filename/reverse/simplify are carried into the result
// as metadata describing how g was loaded; RunOnce does not reload g.
func RunOnce(ctx context.Context, clock timing.Clock, g *graph.Graph, method Method, filename string, reverse, simplify bool, mintimeMs int) RunStats {
	n := g.NVertices()
	d := dom.New(g)
	r := g.Source()

	inner := 100000/n + 1
	if mintimeMs <= 0 {
		inner = 1
	}

	idom := make([]int32, n+1)
	runs := 0

	_, span := telemetry.StartRun(ctx, telemetry.RunAttrs{
		Method:   method.String(),
		Vertices: n,
		Arcs:     g.NArcs(),
	})
	defer span.End()

	mintimeSec := float64(mintimeMs) / 1000.0
	start := clock.Now()
	var elapsed float64
	for {
		for i := 0; i < inner; i++ {
			runs++
			_ = Run(method, d, r, idom)
		}
		elapsed = clock.Since(start).Seconds()
		if elapsed >= mintimeSec {
			break
		}
	}

	telemetry.RecordCounters(span, d.ICount, d.CCount, d.SCount)

	avg := elapsed / float64(runs)

	stats := RunStats{
		Filename:    filename,
		Vertices:    n,
		Arcs:        g.NArcs(),
		Density:     float64(g.NArcs()) / float64(n),
		Method:      method,
		Reverse:     reverse,
		Simplify:    simplify,
		TotalTime:   elapsed,
		MinTime:     mintimeMs / 1000,
		Inner:       inner,
		Runs:        runs,
		AvgTime:     avg,
		AvgTimeMs:   avg * 1000.0,
		AvgTimeUs:   avg * 1000000.0,
		Iterations:  d.ICount,
		SemiParent:  d.SCount,
		Comparisons: d.CCount,
	}
	if n > 1 {
		stats.SemiParentF = float64(d.SCount) / float64(n-1)
	}
	stats.RComparisons = float64(d.CCount) / float64(n)

	if ProducesIdom(method) {
		stats.Idom = idom
	}

	return stats
}
