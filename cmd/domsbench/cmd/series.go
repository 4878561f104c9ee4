package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dominators/domsbench/internal/bench"
	"github.com/dominators/domsbench/internal/statsfmt"
	"github.com/dominators/domsbench/pkg/timing"
)

var seriesCmd = &cobra.Command{
	Use:   "series <series-file> <method>",
	Short: "Time one method across every graph named in a .series list",
	Args:  cobra.ExactArgs(2),
	RunE:  runSeries,
}

func init() {
	rootCmd.AddCommand(seriesCmd)
}

func runSeries(cmd *cobra.Command, args []string) error {
	seriesPath, methodName := args[0], args[1]

	method, ok := bench.ParseMethod(methodName)
	if !ok {
		return &bench.ErrUnknownMethod{Name: methodName}
	}

	graphs, err := bench.LoadSeries(seriesPath, reverse, simplify)
	if err != nil {
		return fmt.Errorf("loading series %s: %w", seriesPath, err)
	}
	if len(graphs) == 0 {
		return fmt.Errorf("series %s named no usable graphs", seriesPath)
	}

	stats := bench.RunSeries(timing.NewRealClock(), graphs, method, seriesPath, reverse, simplify, mintimeMs)
	statsfmt.PrintSeriesStats(log, stats)
	return nil
}
