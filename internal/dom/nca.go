package dom

// intersect returns the nearest common ancestor of u and v in the
// dominator relation dom, used by IDFS over post-order ordinals where
// deeper vertices carry smaller numbers: at each step the smaller finger
// is advanced toward the root via dom, since it is further from meeting.
// Both u and v must already have a non-zero dom entry; callers short
// circuit before calling otherwise.
func intersect(u, v int32, dom []int32) int32 {
	for u != v {
		for u < v {
			u = dom[u]
		}
		for v < u {
			v = dom[v]
		}
	}
	return u
}

// preIntersect is intersect's pre-order counterpart, used by IBFS: deeper
// vertices carry larger pre-order numbers, so the larger finger is the one
// advanced toward the root at each step.
func preIntersect(u, v int32, dom []int32) int32 {
	for u != v {
		for u > v {
			u = dom[u]
		}
		for v > u {
			v = dom[v]
		}
	}
	return u
}
