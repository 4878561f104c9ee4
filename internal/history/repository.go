package history

import "context"

// Repository defines the interface for run-history persistence.
type Repository interface {
	// Record stores a completed benchmark run.
	Record(ctx context.Context, run *BenchmarkRun) error

	// ListByGraph returns the most recent runs against the named graph,
	// newest first, up to limit rows.
	ListByGraph(ctx context.Context, graph string, limit int) ([]BenchmarkRun, error)

	// ListByMethod returns the most recent runs of the named method,
	// newest first, up to limit rows.
	ListByMethod(ctx context.Context, method string, limit int) ([]BenchmarkRun, error)
}
