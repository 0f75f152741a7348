package levels

import (
	"cmp"
	"maps"
	"slices"

	"github.com/matzehuels/cargograph/pkg/errors"
	"github.com/matzehuels/cargograph/pkg/graph"
)

// Direction selects which way edges are followed.
type Direction string

const (
	// Up follows edges as recorded, starting from packages nothing depends on.
	Up Direction = "up"
	// Down follows reversed edges, starting from packages with no dependencies.
	Down Direction = "down"
)

// ParseDirection validates s as "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidDirection, "invalid level direction %q (available: up, down)", s)
}

// Entry is a package at a given level.
type Entry struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Label        string   `json:"label" yaml:"label"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

// Levels holds the distance of every reachable node.
type Levels struct {
	g      *graph.Graph
	dir    Direction
	dist   map[string]int
	roots  []string
	cyclic bool
}

// Compute assigns every node reachable from a root its minimum distance.
// Roots are nodes with in-degree zero after applying dir.
func Compute(g *graph.Graph, dir Direction) *Levels {
	view := g
	if dir == Down {
		view = g.Reversed()
	}

	roots := graph.NodeIDs(view.Sources())
	cyclic := false
	if len(roots) == 0 {
		roots = graph.NodeIDs(view.Nodes())
		cyclic = len(roots) > 0
	}

	dist := make(map[string]int, view.NodeCount())
	queue := make([]string, 0, view.NodeCount())
	for _, id := range roots {
		dist[id] = 0
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		next := dist[curr] + 1
		for _, child := range view.Children(curr) {
			if d, seen := dist[child]; !seen || next < d {
				dist[child] = next
				queue = append(queue, child)
			}
		}
	}

	return &Levels{g: g, dir: dir, dist: dist, roots: roots, cyclic: cyclic}
}

// Distances returns the level of every reachable node of g. It is shorthand
// for Compute(g, dir).Distances().
func Distances(g *graph.Graph, dir Direction) map[string]int {
	return Compute(g, dir).Distances()
}

// Direction returns the direction the levels were computed in.
func (l *Levels) Direction() Direction { return l.dir }

// Roots returns the IDs the search started from.
func (l *Levels) Roots() []string { return slices.Clone(l.roots) }

// Cyclic reports whether no node had in-degree zero, so every node was used
// as a root and placed on level 0.
func (l *Levels) Cyclic() bool { return l.cyclic }

// Distance returns the level of id and whether it was reached.
func (l *Levels) Distance(id string) (int, bool) {
	d, ok := l.dist[id]
	return d, ok
}

// Distances returns a copy of the node→level map. Unreached nodes are absent.
func (l *Levels) Distances() map[string]int { return maps.Clone(l.dist) }

// Max returns the deepest assigned level, or -1 when nothing was reached.
func (l *Levels) Max() int {
	highest := -1
	for _, d := range l.dist {
		highest = max(highest, d)
	}
	return highest
}

// Unreached returns the IDs of nodes with no level, in graph order.
func (l *Levels) Unreached() []string {
	var ids []string
	for _, n := range l.g.Nodes() {
		if _, ok := l.dist[n.ID]; !ok {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// At returns the packages on the given level, sorted by bare name. Ties keep
// graph order. Each entry lists the distinct names of its direct
// dependencies in the original edge direction, sorted.
func (l *Levels) At(level int) []Entry {
	entries := []Entry{}
	for _, n := range l.g.Nodes() {
		if d, ok := l.dist[n.ID]; !ok || d != level {
			continue
		}
		entries = append(entries, Entry{
			ID:           n.ID,
			Name:         n.Name(),
			Label:        n.Label,
			Dependencies: l.dependencyNames(n.ID),
		})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int { return cmp.Compare(a.Name, b.Name) })
	return entries
}

func (l *Levels) dependencyNames(id string) []string {
	names := []string{}
	for _, child := range l.g.Children(id) {
		name := child
		if n, ok := l.g.Node(child); ok {
			name = n.Name()
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Report is a level listing ready to be written out.
type Report struct {
	Level     int       `json:"level" yaml:"level"`
	Direction Direction `json:"direction" yaml:"direction"`
	Nodes     []Entry   `json:"nodes" yaml:"nodes"`
}

// Report builds the listing for level.
func (l *Levels) Report(level int) Report {
	return Report{Level: level, Direction: l.dir, Nodes: l.At(level)}
}
