package bench

import "github.com/dominators/domsbench/internal/dom"

// Mismatch records one vertex where two idom arrays disagree.
type Mismatch struct {
	Vertex int
	Want   int32
	Got    int32
}

// Compare reports whether a and b agree on idom[1..n], returning every
// disagreeing vertex; an empty slice means they agree. Mirrors dom.cpp's
// compare().
func Compare(n int, a, b []int32) (bool, []Mismatch) {
	var mismatches []Mismatch
	for i := 1; i <= n; i++ {
		if a[i] != b[i] {
			mismatches = append(mismatches, Mismatch{Vertex: i, Want: a[i], Got: b[i]})
		}
	}
	return len(mismatches) == 0, mismatches
}

// CheckResult reports the outcome of checking one non-reference method
// against the IDFS reference.
type CheckResult struct {
	Method     Method
	Passed     bool
	Mismatches []Mismatch
}

// Check runs IDFS as the reference implementation and compares every
// method in CheckedMethods against it, mirroring dom.cpp's check(). r is
// the graph's source vertex and n its vertex count.
func Check(d *dom.Dominators, n, r int) []CheckResult {
	ref := make([]int32, n+1)
	_ = Run(IDFS, d, r, ref)

	results := make([]CheckResult, 0, len(CheckedMethods))
	for _, m := range CheckedMethods {
		idom := make([]int32, n+1)
		for i := 1; i <= n; i++ {
			idom[i] = int32(n + int(m) + i) // weird sentinel values, same trick as dom.cpp
		}
		_ = Run(m, d, r, idom)
		passed, mismatches := Compare(n, ref, idom)
		results = append(results, CheckResult{Method: m, Passed: passed, Mismatches: mismatches})
	}
	return results
}

// AllPassed reports whether every result in results passed.
func AllPassed(results []CheckResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
