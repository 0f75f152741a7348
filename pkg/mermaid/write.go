package mermaid

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cargograph/pkg/graph"
)

// edgeIndent prefixes every edge line.
const edgeIndent = "    "

// Write emits g as a Mermaid graph with the given direction.
//
// The output is a "graph <dir>" header followed by one
// "    from[label] --> to[label]" line per edge, in the order edges were
// added. Every line is newline-terminated.
func Write(w io.Writer, dir Direction, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "graph %s\n", dir)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s%s --> %s\n", edgeIndent, nodeRef(g, e.From), nodeRef(g, e.To))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write mermaid: %w", err)
	}
	return nil
}

// Export writes g as Mermaid text to the file at path, replacing it.
func Export(path string, dir Direction, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, dir, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func nodeRef(g *graph.Graph, id string) string {
	label := id
	if n, ok := g.Node(id); ok {
		label = n.Label
	}
	return id + "[" + label + "]"
}
