package levels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/cargograph/pkg/errors"
	"github.com/matzehuels/cargograph/pkg/graph"
	"github.com/matzehuels/cargograph/pkg/mermaid"
)

// build creates a graph from "from>to" pairs; labels equal IDs.
func build(t *testing.T, pairs ...string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, p := range pairs {
		from, to, ok := strings.Cut(p, ">")
		require.True(t, ok, "bad pair %q", p)
		_ = g.AddNode(graph.Node{ID: from, Label: from})
		_ = g.AddNode(graph.Node{ID: to, Label: to})
		_, err := g.AddEdge(graph.Edge{From: from, To: to})
		require.NoError(t, err)
	}
	return g
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestCompute_Chain(t *testing.T) {
	g := build(t, "A>B", "B>C")

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, Distances(g, Up))
	assert.Equal(t, map[string]int{"C": 0, "B": 1, "A": 2}, Distances(g, Down))
}

func TestCompute_ShortestFromAnyRoot(t *testing.T) {
	g := build(t, "R1>A", "A>B", "B>C", "R2>C")

	l := Compute(g, Up)
	d, ok := l.Distance("C")
	require.True(t, ok)
	assert.Equal(t, 1, d)
	assert.ElementsMatch(t, []string{"R1", "R2"}, l.Roots())
	assert.Equal(t, 2, l.Max())
	assert.False(t, l.Cyclic())
}

func TestCompute_DiamondTakesMinimum(t *testing.T) {
	// A reaches D in two hops via B and in three via C1→C2.
	g := build(t, "A>C1", "C1>C2", "C2>D", "A>B", "B>D")

	d, ok := Compute(g, Up).Distance("D")
	require.True(t, ok)
	assert.Equal(t, 2, d)
}

func TestCompute_UnreachableExcluded(t *testing.T) {
	// X and Y form a cycle that no root reaches.
	g := build(t, "A>B", "X>Y", "Y>X")

	l := Compute(g, Up)
	assert.False(t, l.Cyclic())
	assert.Equal(t, []string{"X", "Y"}, l.Unreached())
	assert.Equal(t, []string{"A"}, names(l.At(0)))
	assert.Equal(t, []string{"B"}, names(l.At(1)))
	for level := 0; level <= 3; level++ {
		for _, e := range l.At(level) {
			assert.NotContains(t, []string{"X", "Y"}, e.ID)
		}
	}
}

func TestCompute_FullyCyclic(t *testing.T) {
	g := build(t, "A>B", "B>C", "C>A")

	l := Compute(g, Up)
	assert.True(t, l.Cyclic())
	assert.Equal(t, []string{"A", "B", "C"}, names(l.At(0)))
	assert.Empty(t, l.At(1))
}

func TestCompute_Empty(t *testing.T) {
	l := Compute(graph.New(), Up)
	assert.False(t, l.Cyclic())
	assert.Equal(t, -1, l.Max())
	assert.Empty(t, l.At(0))
}

func TestAt_DownUsesOriginalDependencies(t *testing.T) {
	g := build(t, "A>B", "B>C")

	l := Compute(g, Down)
	top := l.At(2)
	require.Len(t, top, 1)
	assert.Equal(t, "A", top[0].Name)
	assert.Equal(t, []string{"B"}, top[0].Dependencies)

	leaves := l.At(0)
	require.Len(t, leaves, 1)
	assert.Equal(t, "C", leaves[0].Name)
	assert.Empty(t, leaves[0].Dependencies)
}

func TestAt_SortedNamesAndDeps(t *testing.T) {
	input := `graph TD
    zeta_v1[zeta v1] --> serde_v2[serde v2]
    zeta_v1[zeta v1] --> log_v1[log v1]
    zeta_v1[zeta v1] --> serde_v1[serde v1]
    alpha_v1[alpha v1] --> log_v1[log v1]
    alpha_v2[alpha v2] --> zeta_v1[zeta v1]
`
	g, err := mermaid.Read(strings.NewReader(input))
	require.NoError(t, err)

	l := Compute(g, Up)
	roots := l.At(0)
	require.Len(t, roots, 2)
	assert.Equal(t, "alpha_v1", roots[0].ID, "ties keep graph order")
	assert.Equal(t, "alpha_v2", roots[1].ID)

	mid := l.At(1)
	var zeta Entry
	for _, e := range mid {
		if e.Name == "zeta" {
			zeta = e
		}
	}
	assert.Equal(t, []string{"log", "serde"}, zeta.Dependencies)
	assert.Equal(t, "zeta v1", zeta.Label)
}

func TestSpecExample(t *testing.T) {
	input := `graph TD
    root_v1_0_0[root v1.0.0] --> dep_a_v0_1_0[dep_a v0.1.0]
    dep_a_v0_1_0[dep_a v0.1.0] --> dep_b_v2_0_0[dep_b v2.0.0]
    root_v1_0_0[root v1.0.0] --> dep_c_v1_2_0[dep_c v1.2.0]
`
	g, err := mermaid.Read(strings.NewReader(input))
	require.NoError(t, err)

	entries := Compute(g, Up).At(0)
	require.Len(t, entries, 1)
	assert.Equal(t, "root", entries[0].Name)
	assert.Equal(t, "root v1.0.0", entries[0].Label)
	assert.Equal(t, []string{"dep_a", "dep_c"}, entries[0].Dependencies)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, Up, d)

	d, err = ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, Down, d)

	_, err = ParseDirection("sideways")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidDirection))
}
