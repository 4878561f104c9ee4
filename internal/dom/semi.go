package dom

import "github.com/dominators/domsbench/internal/traverse"

// SemiDominators computes semidominators alone, by the same reverse
// pre-order scan SLT uses in its first phase, without the bucket
// machinery that resolves full dominators. It exists as a diagnostic: its
// output, translated to labels, matches the semi array SLT leaves behind
// after processing vertex 2.
//
// The returned slice is label-indexed; result[label] is the label of the
// semidominator of label, or 0 if label is unreachable from r or is r
// itself.
func (d *Dominators) SemiDominators(r int) []int32 {
	d.Counters = Counters{}
	n := d.g.NVertices()

	semi := make([]int32, n+1)
	label := make([]int32, n+1)
	for i := n; i >= 0; i-- {
		label[i] = int32(i)
		semi[i] = int32(i)
	}

	pre := traverse.PreDFS(d.g, r)
	N := int32(pre.N)
	pre2label := pre.Num2Label
	label2pre := pre.Label2Num
	parent := pre.Parent
	semiCmp := func(x int32) int32 { return semi[x] }

	for i := N; i > 1; i-- {
		for _, pLabel := range d.g.InBounds(int(pre2label[i])) {
			v := label2pre[pLabel]
			d.CCount++
			if v != 0 {
				var u int32
				d.CCount++
				if v <= i {
					u = v
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
		if semi[i] == parent[i] {
			d.SCount++
		}
	}

	out := make([]int32, n+1)
	for i := N; i > 1; i-- {
		out[pre2label[i]] = pre2label[semi[i]]
	}
	return out
}
