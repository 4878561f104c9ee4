package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dominators/domsbench/internal/dom"
)

func TestCompareAgrees(t *testing.T) {
	a := []int32{0, 0, 1, 1, 1}
	b := []int32{0, 0, 1, 1, 1}
	ok, mismatches := Compare(4, a, b)
	assert.True(t, ok)
	assert.Empty(t, mismatches)
}

func TestCompareDisagrees(t *testing.T) {
	a := []int32{0, 0, 1, 1, 1}
	b := []int32{0, 0, 1, 1, 2}
	ok, mismatches := Compare(4, a, b)
	assert.False(t, ok)
	assert.Equal(t, []Mismatch{{Vertex: 4, Want: 1, Got: 2}}, mismatches)
}

func TestCheckAllMethodsAgreeOnDiamond(t *testing.T) {
	g := diamondGraph()
	d := dom.New(g)
	results := Check(d, g.NVertices(), g.Source())

	assert.Len(t, results, len(CheckedMethods))
	assert.True(t, AllPassed(results))
	for _, r := range results {
		assert.True(t, r.Passed, "method %s should match the IDFS reference", r.Method)
		assert.Empty(t, r.Mismatches)
	}
}

func TestCheckAllMethodsAgreeOnChain(t *testing.T) {
	g := chainGraph(6)
	d := dom.New(g)
	results := Check(d, g.NVertices(), g.Source())
	assert.True(t, AllPassed(results))
}

func TestAllPassedEmptyIsTrue(t *testing.T) {
	assert.True(t, AllPassed(nil))
}

func TestAllPassedFalseOnFailure(t *testing.T) {
	results := []CheckResult{
		{Method: IBFS, Passed: true},
		{Method: SLT, Passed: false, Mismatches: []Mismatch{{Vertex: 2, Want: 1, Got: 3}}},
	}
	assert.False(t, AllPassed(results))
}
