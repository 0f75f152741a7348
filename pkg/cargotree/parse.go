package cargotree

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cargograph/pkg/graph"
)

// maxLineSize bounds a single line of tree output.
const maxLineSize = 1 << 20

// Result is the outcome of parsing a dependency tree.
type Result struct {
	// Graph holds every node seen (first label per ID wins, annotations
	// included) and the deduplicated parent→child edges.
	Graph *graph.Graph

	// Names is the set of bare package names encountered, blacklisted or not.
	Names NameSet

	// Skipped counts blank and continuation lines that carried no node.
	Skipped int
}

// Whitelist returns the sorted names present in the tree but absent from
// blacklist.
func (r *Result) Whitelist(blacklist NameSet) []string {
	return Whitelist(r.Names, blacklist)
}

// Parse builds a dependency graph from lines of tree output.
//
// Nesting is tracked with an ancestor stack indexed by depth. Each package
// is attached to the nearest ancestor that is itself a package and not
// blacklisted, so removing a package re-parents its children onto its own
// ancestors. Blacklisted packages are recorded in the node set and in
// [Result.Names] but never appear on an edge. Annotation lines hold a stack
// slot so that their children keep the right depth, but are skipped when
// looking for a parent.
func Parse(lines []string, blacklist NameSet) *Result {
	p := newParser(blacklist)
	for _, line := range lines {
		p.line(line)
	}
	return p.result()
}

// ParseReader reads tree output from r line by line and parses it.
// ParseReader does not close r.
func ParseReader(r io.Reader, blacklist NameSet) (*Result, error) {
	p := newParser(blacklist)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return p.result(), nil
}

// ParseFile opens the tree output file at path and parses it.
func ParseFile(path string, blacklist NameSet) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseReader(f, blacklist)
}

type parser struct {
	blacklist NameSet
	stack     []graph.Node
	g         *graph.Graph
	names     NameSet
	skipped   int
}

func newParser(blacklist NameSet) *parser {
	if blacklist == nil {
		blacklist = NameSet{}
	}
	return &parser{
		blacklist: blacklist,
		g:         graph.New(),
		names:     NameSet{},
	}
}

func (p *parser) result() *Result {
	return &Result{Graph: p.g, Names: p.names, Skipped: p.skipped}
}

func (p *parser) line(raw string) {
	l := ClassifyLine(raw)
	if l.Skip() {
		p.skipped++
		return
	}
	node, ok := ParseNode(l.Payload)
	if !ok {
		p.skipped++
		return
	}

	if l.Depth <= len(p.stack) {
		p.stack = p.stack[:l.Depth]
	}

	// Duplicate IDs keep their first label.
	_ = p.g.AddNode(node)

	if node.IsDependency() {
		name := node.Name()
		p.names.Add(name)
		if !p.blacklist.Has(name) {
			if parent, ok := p.parent(); ok && parent.ID != node.ID {
				_, _ = p.g.AddEdge(graph.Edge{From: parent.ID, To: node.ID})
			}
		}
	}

	p.stack = append(p.stack, node)
}

// parent returns the deepest stack entry that is a package and not
// blacklisted, skipping over annotations and blacklisted packages.
func (p *parser) parent() (graph.Node, bool) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		ancestor := p.stack[i]
		if !ancestor.IsDependency() {
			continue
		}
		if p.blacklist.Has(ancestor.Name()) {
			continue
		}
		return ancestor, true
	}
	return graph.Node{}, false
}
