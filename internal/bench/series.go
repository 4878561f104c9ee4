package bench

import (
	"context"
	"fmt"

	"github.com/dominators/domsbench/internal/dimacs"
	"github.com/dominators/domsbench/internal/dom"
	"github.com/dominators/domsbench/internal/graph"
	"github.com/dominators/domsbench/pkg/parallel"
	"github.com/dominators/domsbench/pkg/timing"
)

// SeriesStats aggregates one method's timing run across every graph named
// in a .series list, mirroring the fields dom.cpp's runSeries prints.
type SeriesStats struct {
	Method   Method
	Reverse  bool
	Simplify bool
	Series   string

	Runs   int
	Graphs int

	TotalTime float64
	AvgTime   float64
	AvgTimeMs float64
	AvgTimeUs float64
	GTimeUs   float64
	VTimeUs   float64
	ATimeUs   float64
	STimeUs   float64

	TotalSize int
	AvgSize   float64
	TotalV    int
	AvgV      float64
	TotalA    int
	AvgA      float64
	TotalD    float64
	AvgD      float64

	Ops   float64
	OpsG  float64
	OpsV  float64
	AOpsV float64

	SP  float64
	SPA float64
	SPF float64

	ItCount  float64
	ItCountG float64
}

// LoadSeries loads every graph named in the .series file at path,
// mirroring createGraphList/readList. A graph that fails to load makes
// LoadSeries return that error; since dimacs.Load rejects a missing or
// out-of-range source, such a graph aborts the series rather than being
// skipped.
func LoadSeries(path string, reverse, simplify bool) ([]*graph.Graph, error) {
	paths, err := dimacs.ReadSeries(path)
	if err != nil {
		return nil, err
	}

	graphs := make([]*graph.Graph, 0, len(paths))
	for _, p := range paths {
		g, err := dimacs.Load(p, reverse, simplify)
		if err != nil {
			return nil, fmt.Errorf("loading %s from series %s: %w", p, path, err)
		}
		if g.Source() == 0 {
			continue
		}
		graphs = append(graphs, g)
	}
	return graphs, nil
}

// RunSeries times method against every graph in graphs, mirroring
// dom.cpp's runSeries: each repetition of the timing loop runs method
// against every graph once, so the measured time covers the whole batch
// rather than one graph at a time. The per-graph operation counters
// reported in the result reflect the final repetition only, exactly as
// the original reads graph->ccount/icount/scount after the loop exits.
func RunSeries(clock timing.Clock, graphs []*graph.Graph, method Method, seriesPath string, reverse, simplify bool, mintimeMs int) SeriesStats {
	maxN := 0
	for _, g := range graphs {
		if g.NVertices() > maxN {
			maxN = g.NVertices()
		}
	}
	idom := make([]int32, maxN+1)

	dominators := make([]*dom.Dominators, len(graphs))
	for i, g := range graphs {
		dominators[i] = dom.New(g)
	}

	mintimeSec := float64(mintimeMs) / 1000.0
	runs := 0
	start := clock.Now()
	var elapsed float64
	for {
		runs++
		for i, g := range graphs {
			_ = Run(method, dominators[i], g.Source(), idom[:g.NVertices()+1])
		}
		elapsed = clock.Since(start).Seconds()
		if elapsed >= mintimeSec {
			break
		}
	}

	var vsum, asum int
	var dsum, ops, opsv, itsum, sp, spf float64
	for i, g := range graphs {
		n := g.NVertices()
		m := g.NArcs()
		vsum += n
		asum += m
		dsum += float64(m) / float64(n)

		c := dominators[i].Counters
		ops += float64(c.CCount)
		opsv += float64(c.CCount) / float64(n)
		itsum += float64(c.ICount)
		sp += float64(c.SCount)
		if n > 1 {
			spf += float64(c.SCount) / float64(n-1)
		}
	}

	count := float64(len(graphs))
	avg := elapsed / float64(runs)

	return SeriesStats{
		Method:   method,
		Reverse:  reverse,
		Simplify: simplify,
		Series:   seriesPath,

		Runs:   runs,
		Graphs: len(graphs),

		TotalTime: elapsed,
		AvgTime:   avg,
		AvgTimeMs: avg * 1000.0,
		AvgTimeUs: avg * 1000000.0,
		GTimeUs:   avg * 1000000.0 / count,
		VTimeUs:   avg * 1000000.0 / float64(vsum),
		ATimeUs:   avg * 1000000.0 / float64(asum),
		STimeUs:   avg * 1000000.0 / float64(asum+vsum),

		TotalSize: asum + vsum,
		AvgSize:   float64(asum+vsum) / count,
		TotalV:    vsum,
		AvgV:      float64(vsum) / count,
		TotalA:    asum,
		AvgA:      float64(asum) / count,
		TotalD:    dsum,
		AvgD:      dsum / count,

		Ops:   ops,
		OpsG:  ops / count,
		OpsV:  ops / float64(vsum),
		AOpsV: opsv / count,

		SP:  sp,
		SPA: sp / float64(vsum),
		SPF: spf / count,

		ItCount:  itsum,
		ItCountG: itsum / count,
	}
}

// CheckSeriesResult is the outcome of cross-checking one graph in a
// series against the IDFS reference.
type CheckSeriesResult struct {
	Index   int
	Graph   *graph.Graph
	Results []CheckResult
}

// CheckSeries cross-checks every graph in graphs concurrently via pool,
// mirroring dom.cpp's checkSeries except that checks run independently in
// parallel instead of aborting at the first failure: correctness checks
// on different graphs don't share timing state the way RunSeries's
// repetitions do, so nothing is lost by running them concurrently. The
// caller decides what to do with a failing result.
func CheckSeries(ctx context.Context, graphs []*graph.Graph, pool *parallel.WorkerPool[int, []CheckResult]) []CheckSeriesResult {
	indices := make([]int, len(graphs))
	for i := range graphs {
		indices[i] = i
	}

	taskResults := pool.ExecuteFunc(ctx, indices, func(ctx context.Context, idx int) ([]CheckResult, error) {
		g := graphs[idx]
		d := dom.New(g)
		return Check(d, g.NVertices(), g.Source()), nil
	})

	results := make([]CheckSeriesResult, len(graphs))
	for i, tr := range taskResults {
		results[i] = CheckSeriesResult{Index: i, Graph: graphs[i], Results: tr.Result}
	}
	return results
}
