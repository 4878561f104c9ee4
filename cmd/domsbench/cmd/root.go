// Package cmd implements the domsbench command-line tool: run, series, and
// check subcommands over the dominator algorithms in internal/bench,
// wired to the history and artifacts stores and to config/log/telemetry
// setup, mirroring the teacher's cobra-based cmd/cli layout.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dominators/domsbench/pkg/config"
	"github.com/dominators/domsbench/pkg/logx"
)

var (
	verbose    bool
	configPath string

	reverse   bool
	simplify  bool
	mintimeMs int
	idomFile  string
	record    bool
	publishTo string

	cfg *config.Config
	log logx.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "domsbench",
	Short: "A dominator-tree benchmark harness",
	Long: `domsbench runs and cross-validates immediate-dominator algorithms
(IBFS, IDFS, SLT, SNCA) against DIMACS shortest-path graphs, timing each
one to a stable measurement the same way the original command-line
benchmark did, plus a -check cross-validation mode and .series batch
mode for running many graphs in one invocation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logx.LevelInfo
		if verbose {
			level = logx.LevelDebug
		}
		log = logx.New(level, os.Stdout)

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded

		if !cmd.Flags().Changed("mintime") {
			mintimeMs = cfg.Harness.MinTimeMs
		}
		return nil
	},
}

// Execute runs the root command, printing the version/counting preamble
// first the way dom.cpp's printBasics did before any other output.
func Execute() {
	printBasics()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a domsbench config file")

	rootCmd.PersistentFlags().BoolVar(&reverse, "reverse", false, "compute post-dominators by reversing every arc before loading")
	rootCmd.PersistentFlags().BoolVar(&simplify, "simplify", false, "drop parallel arcs while loading the graph")
	rootCmd.PersistentFlags().IntVar(&mintimeMs, "mintime", 1000, "minimum measurement window in milliseconds")
	rootCmd.PersistentFlags().StringVar(&idomFile, "idom-file", "", "write the computed idom array to this JSON file")
	rootCmd.PersistentFlags().BoolVar(&record, "record", false, "persist this run's statistics to the configured history store")
	rootCmd.PersistentFlags().StringVar(&publishTo, "publish", "", "upload the idom file to the configured artifact store under this key")

	binName := BinName()
	rootCmd.Example = fmt.Sprintf(`  # Time SNCA against a single graph for at least one second
  %s run graph.gr snca

  # Time IDFS on the reversed graph, writing the idom array to disk
  %s run graph.gr idfs --reverse --idom-file idom.json

  # Cross-validate every method against the idfs reference
  %s check graph.gr

  # Time a method across every graph named in a .series file
  %s series batch.series slt`, binName, binName, binName, binName)
}

// GetLogger returns the logger configured by PersistentPreRunE.
func GetLogger() logx.Logger { return log }

// GetConfig returns the configuration loaded by PersistentPreRunE.
func GetConfig() *config.Config { return cfg }

// BinName returns the base name of the current executable.
func BinName() string { return filepath.Base(os.Args[0]) }

func printBasics() {
	fmt.Println("version 04112401")
	fmt.Println("counting 1")
}
