// Package graph provides the dependency graph shared by the tree parser, the
// Mermaid codec and the level computer.
//
// # Overview
//
// A [Graph] holds [Node] values keyed by a sanitized ID and directed [Edge]
// values meaning "From depends on To". Both are kept in insertion order so
// that every output built from a graph is deterministic and mirrors the
// order of the input listing.
//
// # Basic Usage
//
//	g := graph.New()
//	g.AddNode(graph.Node{ID: "app_v1_0_0", Label: "app v1.0.0"})
//	g.AddNode(graph.Node{ID: "lib_v0_2_0", Label: "lib v0.2.0"})
//	g.AddEdge(graph.Edge{From: "app_v1_0_0", To: "lib_v0_2_0"})
//
// # Node Kinds
//
//   - [NodeKindDependency]: a package, the only kind allowed on edges
//   - [NodeKindAnnotation]: a bracketed section marker from the tree listing
//
// # Deduplication
//
// [Graph.AddNode] keeps the first node registered for an ID, so the first
// label seen wins. [Graph.AddEdge] silently ignores repeated pairs and
// reports whether the edge was new.
//
// # Cycles
//
// Graph does not reject cycles. Consumers that need roots, such as the level
// computer, decide how to handle graphs where [Graph.Sources] is empty.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use.
package graph
