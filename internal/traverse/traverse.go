// Package traverse implements the explicit-stack DFS/BFS traversals that
// seed every dominator algorithm in internal/dom: pre-order and post-order
// depth-first numbering, and breadth-first layer numbering. All traversals
// are iterative so that graph depth (which can reach into the millions on
// degenerate chains) never drives Go call-stack growth.
package traverse

import "github.com/dominators/domsbench/pkg/collections"

// Result carries the outputs common to every traversal kind: the number of
// vertices reachable from the source, the ordinal<->label bijections, and
// (where applicable) the spanning-tree parent array in ordinal space.
//
// Num2Label and Label2Num are sized n+1 and 1-indexed by ordinal and label
// respectively; unreachable labels have Label2Num[label] == 0.
type Result struct {
	N         int
	Num2Label []int32
	Label2Num []int32
	Parent    []int32 // ordinal-indexed spanning-tree parent; nil for postDFS
}

type frame struct {
	v   int32
	idx int // next unvisited index into OutBounds(v)
}

// graphView is the minimal read-only surface a traversal needs; satisfied
// by *graph.Graph (both forward and reversed).
type graphView interface {
	NVertices() int
	OutBounds(v int) []int32
}

// PreDFS runs an iterative pre-order depth-first search from r over forward
// arcs, assigning ordinals in visit order and recording the DFS-tree parent
// in ordinal space. Neighbors are visited in the order they appear in
// OutBounds, making the numbering deterministic for a given graph.
func PreDFS(g graphView, r int) Result {
	n := g.NVertices()
	label2num := make([]int32, n+1)
	num2label := make([]int32, n+1)
	parent := make([]int32, n+1)

	stack := collections.NewStack[frame](64)
	N := int32(0)

	N++
	label2num[r] = N
	num2label[N] = int32(r)
	parent[N] = 0
	stack.Push(frame{v: int32(r), idx: 0})

	for {
		top, ok := stack.Pop()
		if !ok {
			break
		}
		adj := g.OutBounds(int(top.v))
		advanced := false
		for i := top.idx; i < len(adj); i++ {
			w := adj[i]
			if label2num[w] != 0 {
				continue
			}
			stack.Push(frame{v: top.v, idx: i + 1})
			N++
			label2num[w] = N
			num2label[N] = w
			parent[N] = label2num[top.v]
			stack.Push(frame{v: w, idx: 0})
			advanced = true
			break
		}
		_ = advanced
	}

	return Result{N: int(N), Num2Label: num2label, Label2Num: label2num, Parent: parent}
}

// PreBFS runs a breadth-first search from r, assigning ordinals in BFS
// layer order and recording the BFS-tree parent in ordinal space. IBFS
// additionally reuses Parent as its initial dom array, since the BFS
// parent is always a valid (if not yet final) dominator candidate.
func PreBFS(g graphView, r int) Result {
	n := g.NVertices()
	label2num := make([]int32, n+1)
	num2label := make([]int32, n+1)
	parent := make([]int32, n+1)

	q := collections.NewQueue[int32](64)
	N := int32(0)

	N++
	label2num[r] = N
	num2label[N] = int32(r)
	q.Enqueue(int32(r))

	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		for _, w := range g.OutBounds(int(v)) {
			if label2num[w] != 0 {
				continue
			}
			N++
			label2num[w] = N
			num2label[N] = w
			parent[N] = label2num[v]
			q.Enqueue(w)
		}
	}

	return Result{N: int(N), Num2Label: num2label, Label2Num: label2num, Parent: parent}
}

// PostDFS runs an iterative depth-first search from r, assigning ordinals
// in post-visit order. It does not produce a parent array: IDFS only needs
// the post-order numbering, deriving dominance purely from reverse
// adjacency and the fixed-point iteration.
func PostDFS(g graphView, r int) Result {
	n := g.NVertices()
	label2num := make([]int32, n+1)
	num2label := make([]int32, n+1)
	visited := collections.NewBitset(n + 1)

	stack := collections.NewStack[frame](64)
	N := int32(0)

	visited.Set(r)
	stack.Push(frame{v: int32(r), idx: 0})

	for {
		top, ok := stack.Pop()
		if !ok {
			break
		}
		adj := g.OutBounds(int(top.v))
		descended := false
		for i := top.idx; i < len(adj); i++ {
			w := adj[i]
			if visited.Test(int(w)) {
				continue
			}
			visited.Set(int(w))
			stack.Push(frame{v: top.v, idx: i + 1})
			stack.Push(frame{v: w, idx: 0})
			descended = true
			break
		}
		if !descended {
			N++
			label2num[top.v] = N
			num2label[N] = top.v
		}
	}

	return Result{N: int(N), Num2Label: num2label, Label2Num: label2num}
}
