package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dominators/domsbench/internal/bench"
	"github.com/dominators/domsbench/internal/dimacs"
	"github.com/dominators/domsbench/internal/history"
	"github.com/dominators/domsbench/internal/statsfmt"
	"github.com/dominators/domsbench/pkg/timing"
)

var runCmd = &cobra.Command{
	Use:   "run <graph-file> <method>",
	Short: "Time one method against one DIMACS graph",
	Args:  cobra.ExactArgs(2),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	path, methodName := args[0], args[1]

	method, ok := bench.ParseMethod(methodName)
	if !ok {
		return &bench.ErrUnknownMethod{Name: methodName}
	}

	g, err := dimacs.Load(path, reverse, simplify)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	ctx := context.Background()
	stats := bench.RunOnce(ctx, timing.NewRealClock(), g, method, path, reverse, simplify, mintimeMs)
	statsfmt.PrintRunStats(log, stats)

	if idomFile != "" {
		if err := statsfmt.WriteIdomFile(stats, idomFile); err != nil {
			return fmt.Errorf("writing idom file: %w", err)
		}
		log.Info("idom array written to %s", idomFile)

		if publishTo != "" {
			store, err := newArtifactStore()
			if err != nil {
				return fmt.Errorf("configuring artifact store: %w", err)
			}
			if err := store.UploadFile(ctx, publishTo, idomFile); err != nil {
				return fmt.Errorf("publishing idom file: %w", err)
			}
			log.Info("idom array published to %s", store.GetURL(publishTo))
		}
	}

	if record {
		if err := recordRun(ctx, stats); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
	}

	return nil
}

// recordRun persists one run's statistics to the configured history
// store, opening and closing a fresh connection per invocation since
// domsbench is a one-shot CLI rather than a long-lived server.
func recordRun(ctx context.Context, stats bench.RunStats) error {
	db, err := history.NewGormDB(&cfg.Database)
	if err != nil {
		return err
	}
	repo := history.NewGormRepository(db)
	defer repo.Close()

	return repo.Record(ctx, &history.BenchmarkRun{
		Graph:       stats.Filename,
		Vertices:    stats.Vertices,
		Arcs:        stats.Arcs,
		Method:      stats.Method.String(),
		Reverse:     stats.Reverse,
		Simplify:    stats.Simplify,
		TotalTimeMs: stats.TotalTime * 1000.0,
		AvgTimeMs:   stats.AvgTimeMs,
		Runs:        stats.Runs,
		ICount:      int64(stats.Iterations),
		CCount:      int64(stats.Comparisons),
		SCount:      int64(stats.SemiParent),
	})
}
