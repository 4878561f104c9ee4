package graph

import "github.com/dominators/domsbench/pkg/collections"

// Builder accumulates arcs for a graph of known vertex count and produces
// an immutable Graph. It is the in-memory target for loaders such as
// internal/dimacs; it performs no I/O itself.
type Builder struct {
	n    int
	from []int32
	to   []int32
}

// NewBuilder creates a builder for a graph with n vertices (labels 1..n).
func NewBuilder(n int) *Builder {
	return &Builder{n: n}
}

// AddArc records an arc u -> v. Arcs may be added in any order; labels
// must be in 1..n.
func (b *Builder) AddArc(u, v int32) {
	b.from = append(b.from, u)
	b.to = append(b.to, v)
}

// NArcsAdded returns the number of arcs recorded so far (before any
// simplify dedup performed by Build).
func (b *Builder) NArcsAdded() int { return len(b.from) }

// Build finalizes the accumulated arcs into an immutable Graph rooted at
// source. When simplify is true, parallel arcs (repeated (u,v) pairs) are
// dropped, keeping only the first occurrence per source vertex.
func (b *Builder) Build(source int, simplify bool) *Graph {
	n := b.n
	from, to := b.from, b.to
	if simplify {
		from, to = dedupArcs(n, from, to)
	}
	m := len(from)

	foff, fadj := buildCSR(n, m, from, to)
	roff, radj := buildCSR(n, m, to, from)

	return &Graph{
		n:      n,
		m:      m,
		source: source,
		foff:   foff,
		fadj:   fadj,
		roff:   roff,
		radj:   radj,
	}
}

// buildCSR packs (src[i] -> dst[i]) arcs into CSR form keyed on src: off
// is a prefix-sum head-index array of length n+2, adj holds the dst labels
// grouped by src, preserving relative input order within each group.
func buildCSR(n, m int, src, dst []int32) (off, adj []int32) {
	off = make([]int32, n+2)
	for _, u := range src {
		off[u+1]++
	}
	for v := 1; v <= n+1; v++ {
		off[v] += off[v-1]
	}

	adj = make([]int32, m)
	cursor := make([]int32, n+1)
	copy(cursor, off[:n+1])
	for i, u := range src {
		pos := cursor[u]
		adj[pos] = dst[i]
		cursor[u]++
	}
	return off, adj
}

// dedupArcs drops repeated (u,v) pairs, keeping the first occurrence per
// u in input order. Arcs are first grouped by u, so the result lists
// sources in ascending order. Uses a bitset reused across vertices and
// cleared only over the indices it touched, so the whole pass stays linear
// in m.
func dedupArcs(n int, from, to []int32) ([]int32, []int32) {
	// Group arcs by source so that parallel arcs sit next to each other
	// even when the input interleaves sources.
	off, adj := buildCSR(n, len(from), from, to)
	from = make([]int32, len(adj))
	for u := 1; u <= n; u++ {
		for k := off[u]; k < off[u+1]; k++ {
			from[k] = int32(u)
		}
	}
	to = adj

	seen := collections.NewBitset(n + 1)
	touched := make([]int32, 0, 16)

	outFrom := make([]int32, 0, len(from))
	outTo := make([]int32, 0, len(to))

	i := 0
	for i < len(from) {
		j := i
		touched = touched[:0]
		for j < len(from) && from[j] == from[i] {
			v := to[j]
			if !seen.Test(int(v)) {
				seen.Set(int(v))
				touched = append(touched, v)
				outFrom = append(outFrom, from[i])
				outTo = append(outTo, v)
			}
			j++
		}
		for _, v := range touched {
			seen.Clear(int(v))
		}
		i = j
	}
	return outFrom, outTo
}
