package dom

import "github.com/dominators/domsbench/internal/traverse"

// SNCA computes immediate dominators via Semi-NCA: a first pass over
// reverse pre-order computing semidominators with path compression (as in
// SLT, but bucket-free, with label re-seeded to semi after each vertex is
// processed), followed by a forward NCA-climb pass that resolves each
// vertex's dominator directly from its semidominator and tree parent.
func (d *Dominators) SNCA(r int, idom []int32) {
	d.Counters = Counters{}
	n := d.g.NVertices()

	label := make([]int32, n+1)
	semi := make([]int32, n+1)
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
	identityCmp := func(x int32) int32 { return x }

	// Phase 1: semidominators.
	for i := N; i > 1; i-- {
		dom[i] = parent[i]

		for _, pLabel := range d.g.InBounds(int(pre2label[i])) {
			v := label2pre[pLabel]
			if v != 0 {
				var u int32
				d.CCount++
				if v <= i {
					u = v
				} else {
					rcompress(v, parent, label, i, identityCmp)
					u = label[v]
				}
				d.CCount++
				if semi[u] < semi[i] {
					semi[i] = semi[u]
				}
			}
		}
		label[i] = semi[i]
		if semi[i] == parent[i] {
			d.SCount++
		}
	}

	// Phase 2: dominators by NCA climb.
	idom[0] = 0
	for lbl := 1; lbl <= n; lbl++ {
		if label2pre[lbl] == 0 {
			idom[lbl] = 0
		}
	}
	dom[1] = 1
	idom[r] = int32(r)
	for i := int32(2); i <= N; i++ {
		j := dom[i]
		for j > semi[i] {
			j = dom[j]
			d.CCount++
		}
		d.CCount++
		dom[i] = j
		idom[pre2label[i]] = pre2label[dom[i]]
	}
}
