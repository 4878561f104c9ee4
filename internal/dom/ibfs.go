package dom

import "github.com/dominators/domsbench/internal/traverse"

// IBFS computes immediate dominators via the iterative dataflow algorithm
// over forward pre-order, seeded by BFS-tree parents: every reachable
// vertex (other than the root) starts with a non-zero dom candidate, so
// the inner loop only needs to skip predecessors outside the reachable
// set.
func (d *Dominators) IBFS(r int, idom []int32) {
	d.Counters = Counters{}
	n := d.g.NVertices()

	pre := traverse.PreBFS(d.g, r)
	N := int32(pre.N)
	pre2label := pre.Num2Label
	label2pre := pre.Label2Num
	dom := pre.Parent // BFS parent doubles as the initial dom candidate
	dom[1] = 1        // root is its own dominator, not parentless

	changed := true
	for changed {
		d.ICount++
		changed = false

		for i := int32(2); i <= N; i++ {
			newIdom := dom[i]
			for _, u := range d.g.InBounds(int(pre2label[i])) {
				v := label2pre[u]
				d.CCount++
				if v != 0 {
					newIdom = preIntersect(v, newIdom, dom)
				}
			}
			d.CCount++
			if newIdom != dom[i] {
				dom[i] = newIdom
				changed = true
			}
		}
	}

	idom[0] = 0
	for label := 1; label <= n; label++ {
		if label2pre[label] == 0 {
			idom[label] = 0
		}
	}
	for i := N; i > 0; i-- {
		idom[pre2label[i]] = pre2label[dom[i]]
	}
}
