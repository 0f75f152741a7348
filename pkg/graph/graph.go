package graph

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. The existing node is left untouched, so the
	// first label seen for an ID wins.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrAnnotationEndpoint is returned by [Graph.AddEdge] when either endpoint
	// is an annotation node. Annotations never take part in edges.
	ErrAnnotationEndpoint = errors.New("annotation nodes cannot be edge endpoints")
)

// NodeKind distinguishes package nodes from bracketed section markers.
type NodeKind int

const (
	// NodeKindDependency represents a named package with an optional version.
	NodeKindDependency NodeKind = iota
	// NodeKindAnnotation represents a bracketed marker such as
	// "[build-dependencies]". It occupies a depth slot while parsing but is
	// never an edge endpoint.
	NodeKindAnnotation
)

// String returns the lowercase kind name.
func (k NodeKind) String() string {
	if k == NodeKindAnnotation {
		return "annotation"
	}
	return "dependency"
}

// Node is a vertex of the dependency graph.
//
// ID is a sanitized token safe for diagram syntaxes; Label is the
// human-readable "name version" string it was derived from.
type Node struct {
	ID    string
	Label string
	Kind  NodeKind
}

// IsDependency reports whether the node is a package (not an annotation).
func (n Node) IsDependency() bool { return n.Kind == NodeKindDependency }

// IsAnnotation reports whether the node is a bracketed section marker.
func (n Node) IsAnnotation() bool { return n.Kind == NodeKindAnnotation }

// Name returns the bare package name: the first whitespace-separated token of
// the label. Annotation nodes return their full label.
func (n Node) Name() string { return LabelName(n.Label) }

// LabelName returns the first whitespace-separated token of label, or label
// itself when it has none.
func LabelName(label string) string {
	if fields := strings.Fields(label); len(fields) > 0 {
		return fields[0]
	}
	return label
}

// Edge is a directed "From depends on To" connection.
type Edge struct {
	From string // Parent node ID
	To   string // Child node ID
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// Graph is a directed dependency graph that remembers insertion order.
//
// Unlike a strict DAG, Graph accepts cycles: dependency listings can be
// hand-edited, and reversed views of a graph are graphs too. Edges are
// deduplicated by their (From, To) pair.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	edgeSet  map[Edge]struct{}
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		edgeSet:  make(map[Edge]struct{}),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID if a
// node with the same ID already exists; in that case the original node
// (and its label) is kept.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := n
	g.nodes[n.ID] = &node
	g.order = append(g.order, n.ID)
	return nil
}

// AddEdge adds a directed edge between two existing dependency nodes.
//
// It reports whether the edge was new. Adding an edge that is already
// present is not an error and returns false. Returns ErrUnknownSourceNode or
// ErrUnknownTargetNode when an endpoint is missing, and ErrAnnotationEndpoint
// when an endpoint is an annotation node.
func (g *Graph) AddEdge(e Edge) (bool, error) {
	from, ok := g.nodes[e.From]
	if !ok {
		return false, ErrUnknownSourceNode
	}
	to, ok := g.nodes[e.To]
	if !ok {
		return false, ErrUnknownTargetNode
	}
	if from.IsAnnotation() || to.IsAnnotation() {
		return false, ErrAnnotationEndpoint
	}
	if _, dup := g.edgeSet[e]; dup {
		return false, nil
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return true, nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the node stored in the graph.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns a copy of all edges in first-seen order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the IDs this node has edges to (its dependencies), in
// edge insertion order. The returned slice should not be modified.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the IDs that have edges to this node (its dependents), in
// edge insertion order. The returned slice should not be modified.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Labels returns the id→label mapping of every node.
func (g *Graph) Labels() map[string]string {
	labels := make(map[string]string, len(g.nodes))
	for id, n := range g.nodes {
		labels[id] = n.Label
	}
	return labels
}

// Sources returns nodes with no incoming edges, in insertion order.
func (g *Graph) Sources() []*Node {
	var sources []*Node
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 {
			sources = append(sources, g.nodes[id])
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges, in insertion order.
func (g *Graph) Sinks() []*Node {
	var sinks []*Node
	for _, id := range g.order {
		if len(g.outgoing[id]) == 0 {
			sinks = append(sinks, g.nodes[id])
		}
	}
	return sinks
}

// Reversed returns a copy of the graph with every edge flipped. Node order
// and edge order are preserved.
func (g *Graph) Reversed() *Graph {
	r := New()
	for _, id := range g.order {
		_ = r.AddNode(*g.nodes[id])
	}
	for _, e := range g.edges {
		_, _ = r.AddEdge(e.Reverse())
	}
	return r
}

// NodeIDs extracts the ID from each node in a slice.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
