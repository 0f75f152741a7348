package mermaid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/matzehuels/cargograph/pkg/graph"
)

var edgeLineRE = regexp.MustCompile(`^\s*(\S+)\[(.+?)\]\s*-->\s*(\S+)\[(.+?)\]\s*$`)

// maxLineSize bounds a single line of Mermaid input.
const maxLineSize = 1 << 20

// Read parses Mermaid edge lines from r into a graph.
//
// Every matched endpoint becomes a dependency node; the first label seen for
// an ID wins. Header lines ("graph ..."), blank lines and lines that are not
// edges are skipped. Only read errors are returned. Read does not close r.
func Read(r io.Reader) (*graph.Graph, error) {
	g := graph.New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		ParseLine(g, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mermaid: %w", err)
	}
	return g, nil
}

// Import reads the Mermaid file at path. See [Read].
func Import(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// ParseLine adds the nodes and edge described by one Mermaid line to g and
// reports whether the line was an edge.
func ParseLine(g *graph.Graph, line string) bool {
	raw := strings.TrimSpace(line)
	if raw == "" || strings.HasPrefix(raw, "graph ") {
		return false
	}
	m := edgeLineRE.FindStringSubmatch(raw)
	if m == nil {
		return false
	}
	from, fromLabel, to, toLabel := m[1], m[2], m[3], m[4]
	_ = g.AddNode(graph.Node{ID: from, Label: fromLabel})
	_ = g.AddNode(graph.Node{ID: to, Label: toLabel})
	_, _ = g.AddEdge(graph.Edge{From: from, To: to})
	return true
}
