// Package graph implements the compressed-sparse-row flow graph store: the
// immutable, read-only adjacency structure the dominator algorithms in
// internal/dom traverse. Vertices are dense integer labels in 1..n; label 0
// is the "none/unreachable" sentinel.
package graph

// Graph is an immutable directed graph stored in compressed sparse row
// (CSR) form, forward and reverse. It is built once per input by a Builder
// and then shared read-only across any number of dominator calls, even
// concurrently (internal/bench runs independent graphs on a worker pool).
type Graph struct {
	n      int
	m      int
	source int

	foff []int32 // forward head-index array, len n+2
	fadj []int32 // forward neighbor array, len m

	roff []int32 // reverse head-index array, len n+2
	radj []int32 // reverse neighbor array, len m
}

// NVertices returns n, the number of vertices (labels 1..n are valid).
func (g *Graph) NVertices() int { return g.n }

// NArcs returns m, the number of arcs stored.
func (g *Graph) NArcs() int { return g.m }

// Source returns the source label this graph was built with.
func (g *Graph) Source() int { return g.source }

// OutBounds returns the slice of labels u such that (v,u) is an arc of the
// graph. The returned slice is a read-only view into the adjacency array
// and must not be mutated or retained past the graph's lifetime.
func (g *Graph) OutBounds(v int) []int32 {
	if v < 1 || v > g.n {
		return nil
	}
	return g.fadj[g.foff[v]:g.foff[v+1]]
}

// InBounds returns the slice of labels u such that (u,v) is an arc of the
// graph, i.e. the predecessors of v.
func (g *Graph) InBounds(v int) []int32 {
	if v < 1 || v > g.n {
		return nil
	}
	return g.radj[g.roff[v]:g.roff[v+1]]
}

// OutDegree returns the number of arcs leaving v.
func (g *Graph) OutDegree(v int) int { return len(g.OutBounds(v)) }

// InDegree returns the number of arcs entering v.
func (g *Graph) InDegree(v int) int { return len(g.InBounds(v)) }

// Reversed returns a new Graph with every arc's endpoints swapped and the
// given label as its source. Dominators computed on Reversed(g, sink) are
// the post-dominators of g with respect to sink. The returned graph shares
// g's read-only CSR arrays, with the forward and reverse roles swapped.
func (g *Graph) Reversed(source int) *Graph {
	return &Graph{
		n:      g.n,
		m:      g.m,
		source: source,
		foff:   g.roff,
		fadj:   g.radj,
		roff:   g.foff,
		radj:   g.fadj,
	}
}
