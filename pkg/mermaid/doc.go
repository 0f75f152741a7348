// Package mermaid writes dependency graphs as Mermaid flowchart text and
// reads that text back.
//
// # Format
//
// The first line declares the layout direction, followed by one line per
// edge in the graph's edge order:
//
//	graph TD
//	    app_v1_0_0[app v1.0.0] --> serde_v1_0_200[serde v1.0.200]
//	    serde_v1_0_200[serde v1.0.200] --> serde_derive_v1_0_200[serde_derive v1.0.200]
//
// Nodes without edges are not written.
//
// # Export
//
// Use [Write] to emit to any io.Writer, or [Export] to write a file.
//
// # Import
//
// Use [Read] or [Import] to recover nodes and edges. The reader only looks
// for lines shaped like "id[label] --> id[label]": the header, blank lines,
// comments, and anything else added by hand are ignored. Round-tripping a
// graph through [Write] and [Read] preserves edges, their order, and the
// labels of every edge endpoint.
package mermaid
