// Package dimacs loads flow graphs from the DIMACS shortest-path file
// format into internal/graph's CSR store, and reads the newline-delimited
// ".series" list files the benchmark harness uses to batch many graphs
// through the same run.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dominators/domsbench/internal/graph"
	"github.com/dominators/domsbench/pkg/apperr"
)

// Load reads a DIMACS file at path and builds a *graph.Graph. When
// reverse is true, every arc's endpoints are swapped as it is read (used
// to compute post-dominators by feeding the core a pre-reversed graph).
// When simplify is true, parallel arcs are deduplicated during Build.
//
// A graph with no "n <source>" line, or whose source falls outside
// 1..n, is reported as an error: the harness treats this the same way
// the original treated a zero source, as "not a valid input to time".
func Load(path string, reverse, simplify bool) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeParseError, fmt.Sprintf("opening dimacs file %q", path), err)
	}
	defer f.Close()
	return Read(f, reverse, simplify)
}

// Read parses a DIMACS-format stream into a *graph.Graph.
func Read(r io.Reader, reverse, simplify bool) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		builder *graph.Builder
		n, m    int
		source  int
		arcs    int
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) != 4 || fields[1] != "sp" {
				return nil, apperr.New(apperr.CodeParseError, "malformed problem line: "+line)
			}
			var err error
			n, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, apperr.Wrap(apperr.CodeParseError, "invalid vertex count", err)
			}
			m, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, apperr.Wrap(apperr.CodeParseError, "invalid arc count", err)
			}
			builder = graph.NewBuilder(n)
		case "n":
			if len(fields) != 2 {
				return nil, apperr.New(apperr.CodeParseError, "malformed source line: "+line)
			}
			var err error
			source, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, apperr.Wrap(apperr.CodeParseError, "invalid source vertex", err)
			}
		case "a":
			if builder == nil {
				return nil, apperr.New(apperr.CodeParseError, "arc line before problem line")
			}
			if len(fields) != 3 {
				return nil, apperr.New(apperr.CodeParseError, "malformed arc line: "+line)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, apperr.New(apperr.CodeParseError, "invalid arc endpoints: "+line)
			}
			if reverse {
				u, v = v, u
			}
			builder.AddArc(int32(u), int32(v))
			arcs++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperr.Wrap(apperr.CodeParseError, "reading dimacs stream", err)
	}
	if builder == nil {
		return nil, apperr.New(apperr.CodeParseError, "missing problem line")
	}
	if source < 1 || source > n {
		return nil, apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("source %d outside 1..%d", source, n))
	}
	_ = m // declared arc count is informational; the builder tracks actual arcs added

	return builder.Build(source, simplify), nil
}

// ReadSeries reads a ".series" list file: one or more whitespace-separated
// DIMACS file paths, one logical series per file. Paths are returned in
// file order.
func ReadSeries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeParseError, fmt.Sprintf("opening series file %q", path), err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)

	var paths []string
	for scanner.Scan() {
		paths = append(paths, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, apperr.Wrap(apperr.CodeParseError, "reading series file", err)
	}
	return paths, nil
}

// IsSeriesFile reports whether path names a ".series" list file by
// extension, the same convention the original CLI used to switch between
// single-graph and batch modes.
func IsSeriesFile(path string) bool {
	return strings.HasSuffix(path, ".series")
}
