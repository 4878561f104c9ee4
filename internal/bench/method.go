// Package bench implements the benchmark harness: running a dominator
// algorithm to a stable timing measurement, cross-checking the algorithms
// against each other, and aggregating statistics across a series of
// graphs. It mirrors dom.cpp's run/compare/check/runTests/runSeries
// dispatcher, minus the classic Lengauer-Tarjan union-find variant, which
// internal/dom does not implement (SLT and SNCA supersede it).
package bench

import "fmt"

// Method identifies a procedure the harness can run against a graph.
type Method int

// The method codes, in the same order as dom.cpp's Method enum (with LT
// dropped, since internal/dom implements no classic Lengauer-Tarjan path).
const (
	BFS Method = iota
	DFS
	SDOM
	IBFS
	IDFS
	SLT
	SNCA
	numMethods
)

var methodNames = [...]string{
	"bfs",
	"dfs",
	"sdom",
	"ibfs",
	"idfs",
	"slt",
	"snca",
}

// String returns the method's canonical lowercase name, matching dom.cpp's
// mnames table.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "unknown"
	}
	return methodNames[m]
}

// ParseMethod resolves a method name to its code. ok is false if name
// matches none of the known methods.
func ParseMethod(name string) (m Method, ok bool) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), true
		}
	}
	return 0, false
}

// MethodNames returns the names of every known method, in enum order.
func MethodNames() []string {
	names := make([]string, len(methodNames))
	copy(names, methodNames[:])
	return names
}

// CheckedMethods lists the methods domsbench check compares against the
// IDFS reference. IDFS itself is excluded: it is the reference, not a
// candidate.
var CheckedMethods = []Method{IBFS, SLT, SNCA}

// ErrUnknownMethod is returned by ParseMethod callers that want a typed
// sentinel instead of a bool.
type ErrUnknownMethod struct {
	Name string
}

func (e *ErrUnknownMethod) Error() string {
	return fmt.Sprintf("unknown method: %s", e.Name)
}
