package dom

import "github.com/dominators/domsbench/internal/traverse"

// IDFS computes immediate dominators via the iterative dataflow algorithm
// over reverse post-order: repeated fixed-point passes that fold each
// vertex's predecessors into a running candidate dominator using
// intersect, until no vertex's candidate changes.
func (d *Dominators) IDFS(r int, idom []int32) {
	d.Counters = Counters{}
	n := d.g.NVertices()

	post := traverse.PostDFS(d.g, r)
	N := int32(post.N)
	post2label := post.Num2Label
	label2post := post.Label2Num

	dom := make([]int32, n+1)
	dom[N] = N

	changed := true
	for changed {
		d.ICount++
		changed = false

		for i := N - 1; i > 0; i-- {
			var newIdom int32
			for _, u := range d.g.InBounds(int(post2label[i])) {
				v := label2post[u]
				d.CCount++
				if dom[v] != 0 {
					d.CCount++
					if newIdom != 0 {
						newIdom = intersect(v, newIdom, dom)
					} else {
						newIdom = v
					}
				}
			}
			d.CCount++
			if newIdom > dom[i] {
				dom[i] = newIdom
				changed = true
			}
		}
	}

	idom[0] = 0
	for label := 1; label <= n; label++ {
		if label2post[label] == 0 {
			idom[label] = 0
		}
	}
	idom[r] = int32(r)
	for i := N - 1; i > 0; i-- {
		idom[post2label[i]] = post2label[dom[i]]
	}
}
