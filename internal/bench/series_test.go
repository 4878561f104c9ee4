package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dominators/domsbench/internal/graph"
	"github.com/dominators/domsbench/pkg/parallel"
)

const diamondDimacsSrc = "p sp 4 4\nn 1\na 1 2\na 1 3\na 2 4\na 3 4\n"
const chainDimacsSrc = "p sp 3 2\nn 1\na 1 2\na 2 3\n"

func writeSeriesFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	diamondPath := filepath.Join(dir, "diamond.gr")
	chainPath := filepath.Join(dir, "chain.gr")
	require.NoError(t, os.WriteFile(diamondPath, []byte(diamondDimacsSrc), 0644))
	require.NoError(t, os.WriteFile(chainPath, []byte(chainDimacsSrc), 0644))

	seriesPath := filepath.Join(dir, "batch.series")
	require.NoError(t, os.WriteFile(seriesPath, []byte(diamondPath+"\n"+chainPath+"\n"), 0644))
	return seriesPath
}

func TestLoadSeries(t *testing.T) {
	seriesPath := writeSeriesFixture(t)

	graphs, err := LoadSeries(seriesPath, false, false)
	require.NoError(t, err)
	require.Len(t, graphs, 2)
	assert.Equal(t, 4, graphs[0].NVertices())
	assert.Equal(t, 3, graphs[1].NVertices())
}

func TestLoadSeriesMissingFile(t *testing.T) {
	_, err := LoadSeries("/nonexistent/no.series", false, false)
	assert.Error(t, err)
}

func TestRunSeriesAggregatesAcrossGraphs(t *testing.T) {
	graphs := []*graph.Graph{diamondGraph(), chainGraph(3)}
	clock := newStepClock(0)

	stats := RunSeries(clock, graphs, SNCA, "batch.series", false, false, 0)

	assert.Equal(t, 2, stats.Graphs)
	assert.Equal(t, 1, stats.Runs)
	assert.Equal(t, 7, stats.TotalV) // 4 + 3
	assert.Equal(t, 6, stats.TotalA) // 4 + 2
	assert.Equal(t, SNCA, stats.Method)
	assert.Equal(t, "batch.series", stats.Series)
}

func TestRunSeriesLoopsUntilMinTimeElapses(t *testing.T) {
	graphs := []*graph.Graph{diamondGraph()}
	clock := newStepClock(10 * time.Millisecond)

	stats := RunSeries(clock, graphs, IDFS, "batch.series", false, false, 50)
	assert.GreaterOrEqual(t, stats.TotalTime, 0.05)
	assert.Greater(t, stats.Runs, 1)
}

func TestCheckSeriesAllPass(t *testing.T) {
	graphs := []*graph.Graph{diamondGraph(), chainGraph(6)}
	pool := parallel.NewWorkerPool[int, []CheckResult](parallel.DefaultPoolConfig())

	results := CheckSeries(context.Background(), graphs, pool)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, AllPassed(r.Results))
	}
}
