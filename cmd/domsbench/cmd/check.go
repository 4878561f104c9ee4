package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dominators/domsbench/internal/bench"
	"github.com/dominators/domsbench/internal/dimacs"
	"github.com/dominators/domsbench/internal/dom"
	"github.com/dominators/domsbench/internal/statsfmt"
	"github.com/dominators/domsbench/pkg/parallel"
)

var checkCmd = &cobra.Command{
	Use:   "check <graph-file | series-file>",
	Short: "Cross-validate ibfs/slt/snca against the idfs reference",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	if dimacs.IsSeriesFile(path) {
		return checkSeriesFile(path)
	}
	return checkSingleFile(path)
}

func checkSingleFile(path string) error {
	g, err := dimacs.Load(path, reverse, simplify)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	d := dom.New(g)
	results := bench.Check(d, g.NVertices(), g.Source())
	statsfmt.PrintCheckResults(log, path, results)

	if !bench.AllPassed(results) {
		return fmt.Errorf("%s: one or more methods disagree with idfs", path)
	}
	log.Info("%s: all methods agree", path)
	return nil
}

func checkSeriesFile(path string) error {
	graphs, err := bench.LoadSeries(path, reverse, simplify)
	if err != nil {
		return fmt.Errorf("loading series %s: %w", path, err)
	}
	if len(graphs) == 0 {
		return fmt.Errorf("series %s named no usable graphs", path)
	}

	workers := cfg.Harness.MaxWorkers
	pool := parallel.NewWorkerPool[int, []bench.CheckResult](parallel.DefaultPoolConfig().WithWorkers(workers))

	results := bench.CheckSeries(context.Background(), graphs, pool)

	allPassed := true
	for _, r := range results {
		statsfmt.PrintCheckResults(log, fmt.Sprintf("%s[%d]", path, r.Index), r.Results)
		if !bench.AllPassed(r.Results) {
			allPassed = false
		}
	}

	if !allPassed {
		return fmt.Errorf("%s: one or more graphs disagree with idfs", path)
	}
	log.Info("%s: all %d graphs agree", path, len(graphs))
	return nil
}
