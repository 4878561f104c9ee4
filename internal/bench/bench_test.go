package bench

import (
	"time"

	"github.com/dominators/domsbench/internal/graph"
	"github.com/dominators/domsbench/pkg/timing"
)

// stepClock wraps a MockClock and advances it by step every time Since is
// queried, so a RunOnce/RunSeries timing loop terminates deterministically
// after a known number of measurement cycles instead of spinning forever
// against a clock that never moves on its own.
type stepClock struct {
	*timing.MockClock
	step time.Duration
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{MockClock: timing.NewMockClock(time.Unix(0, 0)), step: step}
}

func (c *stepClock) Since(t time.Time) time.Duration {
	c.Advance(c.step)
	return c.MockClock.Since(t)
}

// diamondGraph builds the canonical 1->{2,3}->4 diamond: vertex 4 is
// dominated only by 1, since neither 2 nor 3 alone reaches it.
func diamondGraph() *graph.Graph {
	b := graph.NewBuilder(4)
	b.AddArc(1, 2)
	b.AddArc(1, 3)
	b.AddArc(2, 4)
	b.AddArc(3, 4)
	return b.Build(1, false)
}

// chainGraph builds a straight line 1->2->...->n, where idom[i] == i-1
// for every i > 1.
func chainGraph(n int) *graph.Graph {
	b := graph.NewBuilder(n)
	for i := 1; i < n; i++ {
		b.AddArc(int32(i), int32(i+1))
	}
	return b.Build(1, false)
}
