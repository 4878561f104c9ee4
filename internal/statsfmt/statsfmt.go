// Package statsfmt formats internal/bench's run and series statistics for
// human consumption and for machine-readable idom dumps, mirroring
// dom.cpp's runTests/runSeries stdout output field-for-field and
// internal/formatter's registry-of-printers shape.
package statsfmt

import (
	"fmt"

	"github.com/dominators/domsbench/internal/bench"
	"github.com/dominators/domsbench/pkg/logx"
	"github.com/dominators/domsbench/pkg/writer"
)

// PrintRunStats logs one RunOnce result using the same field names the
// original printed: filename, method, reverse, simplifed (sic), totaltime,
// mintime, inner, runs, avgtime, avgtimem, avgtimeu, iterations,
// semiparent, semiparentf, comparisons, rcomparisons.
func PrintRunStats(log logx.Logger, s bench.RunStats) {
	log.Info("filename        %s", s.Filename)
	log.Info("vertices        %d", s.Vertices)
	log.Info("arcs            %d", s.Arcs)
	log.Info("density         %g", s.Density)
	log.Info("method          %s", s.Method)
	log.Info("reverse         %d", boolToInt(s.Reverse))
	log.Info("simplifed       %d", boolToInt(s.Simplify)) // original typo, kept verbatim
	log.Info("totaltime       %g", s.TotalTime)
	log.Info("mintime         %d", s.MinTime)
	log.Info("inner           %d", s.Inner)
	log.Info("runs            %d", s.Runs)
	log.Info("avgtime         %g", s.AvgTime)
	log.Info("avgtimem        %g", s.AvgTimeMs)
	log.Info("avgtimeu        %g", s.AvgTimeUs)
	log.Info("iterations      %d", s.Iterations)
	log.Info("semiparent      %d", s.SemiParent)
	log.Info("semiparentf     %g", s.SemiParentF)
	log.Info("comparisons     %d", s.Comparisons)
	log.Info("rcomparisons    %g", s.RComparisons)
}

// PrintSeriesStats logs one RunSeries result using the original's
// runSeries field names.
func PrintSeriesStats(log logx.Logger, s bench.SeriesStats) {
	log.Info("method          %s", s.Method)
	log.Info("reverse         %d", boolToInt(s.Reverse))
	log.Info("series          %s", s.Series)
	log.Info("runs            %d", s.Runs)
	log.Info("graphs          %d", s.Graphs)
	log.Info("totaltime       %g", s.TotalTime)
	log.Info("avgtime         %g", s.AvgTime)
	log.Info("avgtimem        %g", s.AvgTimeMs)
	log.Info("avgtimeu        %g", s.AvgTimeUs)
	log.Info("gtimeu          %g", s.GTimeUs)
	log.Info("vtimeu          %g", s.VTimeUs)
	log.Info("atimeu          %g", s.ATimeUs)
	log.Info("stimeu          %g", s.STimeUs)
	log.Info("simplified      %d", boolToInt(s.Simplify))
	log.Info("totals          %d", s.TotalSize)
	log.Info("avgs            %g", s.AvgSize)
	log.Info("totalv          %d", s.TotalV)
	log.Info("avgv            %g", s.AvgV)
	log.Info("totala          %d", s.TotalA)
	log.Info("avga            %g", s.AvgA)
	log.Info("totald          %g", s.TotalD)
	log.Info("avgd            %g", s.AvgD)
	log.Info("ops             %g", s.Ops)
	log.Info("opsg            %g", s.OpsG)
	log.Info("opsv            %g", s.OpsV)
	log.Info("aopsv           %g", s.AOpsV)
	log.Info("sp              %g", s.SP)
	log.Info("spa             %g", s.SPA)
	log.Info("spf             %g", s.SPF)
	log.Info("itcount         %g", s.ItCount)
	log.Info("itcountg        %g", s.ItCountG)
}

// PrintCheckResults logs one graph's cross-validation outcome, mirroring
// dom.cpp's check()/compare() console output.
func PrintCheckResults(log logx.Logger, graphName string, results []bench.CheckResult) {
	for _, r := range results {
		if r.Passed {
			log.Info("%s: %s matches idfs", graphName, r.Method)
			continue
		}
		log.Error("%s: %s disagrees with idfs at %d vertices", graphName, r.Method, len(r.Mismatches))
		for _, m := range r.Mismatches {
			log.Error("  vertex %d: want %d got %d", m.Vertex, m.Want, m.Got)
		}
	}
}

// RunSummary is the machine-readable shape of a RunStats, used for the
// JSON idom dumps written by WriteIdomFile.
type RunSummary struct {
	Filename string   `json:"filename"`
	Method   string   `json:"method"`
	Vertices int      `json:"vertices"`
	Arcs     int      `json:"arcs"`
	Reverse  bool     `json:"reverse"`
	Simplify bool     `json:"simplify"`
	AvgTimeMs float64 `json:"avg_time_ms"`
	Runs     int      `json:"runs"`
	Idom     []int32  `json:"idom,omitempty"`
}

// Summarize converts a RunStats into its JSON-serializable summary.
func Summarize(s bench.RunStats) RunSummary {
	return RunSummary{
		Filename:  s.Filename,
		Method:    s.Method.String(),
		Vertices:  s.Vertices,
		Arcs:      s.Arcs,
		Reverse:   s.Reverse,
		Simplify:  s.Simplify,
		AvgTimeMs: s.AvgTimeMs,
		Runs:      s.Runs,
		Idom:      s.Idom,
	}
}

// WriteIdomFile writes s's idom array as JSON to path, mirroring
// dom.cpp's -idomfile output but in a structured, tool-friendly form
// instead of a flat list of integers.
func WriteIdomFile(s bench.RunStats, path string) error {
	if len(s.Idom) == 0 {
		return fmt.Errorf("method %s does not produce an idom array", s.Method)
	}
	w := writer.NewPrettyJSONWriter[RunSummary]()
	return w.WriteToFile(Summarize(s), path)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
