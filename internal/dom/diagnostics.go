package dom

import "github.com/dominators/domsbench/internal/traverse"

// RunDFS exposes the pre-order traversal used internally by SLT and SNCA,
// for harness diagnostics (e.g. printing the DFS tree alongside idom
// output).
func (d *Dominators) RunDFS(r int) traverse.Result {
	return traverse.PreDFS(d.g, r)
}

// RunBFS exposes the BFS traversal used internally by IBFS.
func (d *Dominators) RunBFS(r int) traverse.Result {
	return traverse.PreBFS(d.g, r)
}
