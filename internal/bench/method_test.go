package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodString(t *testing.T) {
	assert.Equal(t, "bfs", BFS.String())
	assert.Equal(t, "dfs", DFS.String())
	assert.Equal(t, "sdom", SDOM.String())
	assert.Equal(t, "ibfs", IBFS.String())
	assert.Equal(t, "idfs", IDFS.String())
	assert.Equal(t, "slt", SLT.String())
	assert.Equal(t, "snca", SNCA.String())
	assert.Equal(t, "unknown", Method(-1).String())
	assert.Equal(t, "unknown", numMethods.String())
}

func TestParseMethod(t *testing.T) {
	m, ok := ParseMethod("snca")
	assert.True(t, ok)
	assert.Equal(t, SNCA, m)

	_, ok = ParseMethod("lt")
	assert.False(t, ok, "classic LT was never implemented and should not parse")

	_, ok = ParseMethod("bogus")
	assert.False(t, ok)
}

func TestMethodNames(t *testing.T) {
	names := MethodNames()
	assert.Equal(t, []string{"bfs", "dfs", "sdom", "ibfs", "idfs", "slt", "snca"}, names)
}

func TestCheckedMethodsExcludesReferenceAndLT(t *testing.T) {
	assert.NotContains(t, CheckedMethods, IDFS)
	assert.Contains(t, CheckedMethods, IBFS)
	assert.Contains(t, CheckedMethods, SLT)
	assert.Contains(t, CheckedMethods, SNCA)
}

func TestErrUnknownMethod(t *testing.T) {
	err := &ErrUnknownMethod{Name: "bogus"}
	assert.EqualError(t, err, "unknown method: bogus")
}
