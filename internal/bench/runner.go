package bench

import (
	"fmt"

	"github.com/dominators/domsbench/internal/dom"
)

// Run executes method once against d, the dominators engine bound to a
// graph, using r as the source. idom must be sized NVertices()+1 for the
// idom-producing methods (IBFS, IDFS, SLT, SNCA); it is ignored by the
// auxiliary traversal/diagnostic methods (BFS, DFS, SDOM). Mirrors
// dom.cpp's run() dispatcher.
func Run(method Method, d *dom.Dominators, r int, idom []int32) error {
	switch method {
	case IBFS:
		d.IBFS(r, idom)
	case IDFS:
		d.IDFS(r, idom)
	case SLT:
		d.SLT(r, idom)
	case SNCA:
		d.SNCA(r, idom)
	case DFS:
		d.RunDFS(r)
	case BFS:
		d.RunBFS(r)
	case SDOM:
		d.SemiDominators(r)
	default:
		return fmt.Errorf("unsupported method: %v", method)
	}
	return nil
}

// ProducesIdom reports whether method fills the idom array, as opposed to
// running only an auxiliary traversal or diagnostic pass.
func ProducesIdom(method Method) bool {
	switch method {
	case IBFS, IDFS, SLT, SNCA:
		return true
	default:
		return false
	}
}
