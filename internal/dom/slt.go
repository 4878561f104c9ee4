package dom

import "github.com/dominators/domsbench/internal/traverse"

// SLT computes immediate dominators via Simple Lengauer-Tarjan: a single
// reverse pre-order pass computing semidominators with path compression,
// deferring most vertices into intrusive buckets keyed by semidominator,
// followed by a final NCA-pointer resolution pass.
func (d *Dominators) SLT(r int, idom []int32) {
	d.Counters = Counters{}
	n := d.g.NVertices()

	semi := make([]int32, n+1)
	label := make([]int32, n+1)
	ubucket := make([]int32, n+1)
	for i := n; i >= 0; i-- {
		label[i] = int32(i)
		semi[i] = int32(i)
	}

	pre := traverse.PreDFS(d.g, r)
	N := int32(pre.N)
	pre2label := pre.Num2Label
	label2pre := pre.Label2Num
	parent := pre.Parent

	dom := make([]int32, n+1)
	semiCmp := func(x int32) int32 { return semi[x] }

	for i := N; i > 1; i-- {
		// Process i's bucket first: every v deferred here has i as its
		// semidominator candidate; resolve the true dominator now that
		// vertex i itself has been reached by the outer scan.
		for v := ubucket[i]; v != 0; v = ubucket[v] {
			rcompress(v, parent, label, i, semiCmp)
			u := label[v]
			d.CCount++
			if semi[u] < semi[v] {
				dom[v] = u
			} else {
				dom[v] = i
			}
		}

		// Scan predecessors of i, updating its semidominator.
		for _, pLabel := range d.g.InBounds(int(pre2label[i])) {
			v := label2pre[pLabel]
			d.CCount++
			if v != 0 {
				var u int32
				d.CCount++
				if v <= i {
					u = v // v is an ancestor of i in the DFS tree
				} else {
					rcompress(v, parent, label, i, semiCmp)
					u = label[v]
				}
				d.CCount++
				if semi[u] < semi[i] {
					semi[i] = semi[u]
				}
			}
		}

		// Place i in a bucket, or resolve it directly if its
		// semidominator is already its tree parent.
		s := semi[i]
		d.CCount++
		if s != parent[i] {
			ubucket[i] = ubucket[s]
			ubucket[s] = i
		} else {
			dom[i] = s
			d.SCount++
		}
	}

	for v := ubucket[1]; v != 0; v = ubucket[v] {
		dom[v] = 1
	}

	dom[1] = 1
	idom[0] = 0
	for lbl := 1; lbl <= n; lbl++ {
		if label2pre[lbl] == 0 {
			idom[lbl] = 0
		}
	}
	idom[r] = int32(r)
	for i := int32(2); i <= N; i++ {
		d.CCount++
		if dom[i] != semi[i] {
			dom[i] = dom[dom[i]]
		}
		idom[pre2label[i]] = pre2label[dom[i]]
	}
}
