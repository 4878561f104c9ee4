// Package dom implements the immediate-dominator algorithms: IDFS, IBFS,
// SLT (Simple Lengauer-Tarjan) and SNCA (Semi-NCA), plus the semidominator
// helper, path-compression primitive, and NCA primitives they share. Every
// algorithm is single-threaded and synchronous: a call owns its scratch
// arrays exclusively for its duration and releases them on return, leaving
// the input graph untouched.
package dom

// graphView is the read-only adjacency surface the algorithms need, shared
// with internal/traverse so that both packages accept either a forward
// graph.Graph or a graph reversed via Graph.Reversed.
type graphView interface {
	NVertices() int
	OutBounds(v int) []int32
	InBounds(v int) []int32
}

// Counters holds the three diagnostic operation counts every algorithm
// tracks. They are reset at the start of each call and are not meaningful
// to compare across different algorithms, only across repeated calls of
// the same algorithm on the same graph.
type Counters struct {
	ICount int // iteration/loop passes (outer fixed-point passes for IDFS/IBFS)
	CCount int // comparisons, as labeled at each algorithm's comparison sites
	SCount int // "semi equals parent" events (LT/SNCA diagnostic)
}

// Dominators computes immediate dominators for a single graph. It is
// stateless between calls except for the Counters left by the most recent
// call; the zero value is ready to use once bound to a graph via New.
type Dominators struct {
	g graphView
	Counters
}

// New binds a Dominators engine to g. g is treated as read-only and may be
// shared across many Dominators instances, including concurrently, since
// no algorithm mutates it.
func New(g graphView) *Dominators {
	return &Dominators{g: g}
}

// newIdom allocates a zero-filled idom buffer of size n+1. Callers that
// want to detect "failed to write" bugs should pre-fill with a
// recognizable sentinel before invoking an algorithm; the algorithms
// themselves always fill every reachable and unreachable slot so the
// sentinel never survives a correct call.
func newIdom(n int) []int32 {
	return make([]int32, n+1)
}
