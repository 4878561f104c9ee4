// Package history persists completed benchmark runs to a relational store
// so that successive runs against the same graph or method can be compared.
package history

import "time"

// BenchmarkRun records one completed measurement of a dominator algorithm
// against a single graph: the graph it ran on, the method and flags used,
// the timing loop's aggregate results, and the operation counters the
// algorithm itself reports.
type BenchmarkRun struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Graph       string    `gorm:"column:graph;type:varchar(512);index"`
	Vertices    int       `gorm:"column:vertices"`
	Arcs        int       `gorm:"column:arcs"`
	Method      string    `gorm:"column:method;type:varchar(32);index"`
	Reverse     bool      `gorm:"column:reverse"`
	Simplify    bool      `gorm:"column:simplify"`
	TotalTimeMs float64   `gorm:"column:total_time_ms"`
	AvgTimeMs   float64   `gorm:"column:avg_time_ms"`
	Runs        int       `gorm:"column:runs"`
	ICount      int64     `gorm:"column:icount"`
	CCount      int64     `gorm:"column:ccount"`
	SCount      int64     `gorm:"column:scount"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index"`
}

// TableName returns the table name for BenchmarkRun.
func (BenchmarkRun) TableName() string {
	return "benchmark_runs"
}
