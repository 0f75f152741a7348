// Package nodelink renders dependency graphs as Graphviz node-link diagrams.
//
// # Overview
//
// This is the alternative to Mermaid output for users who prefer Graphviz
// tooling or want a ready-made SVG. Nodes appear as rounded boxes labelled
// "name version", connected by arrows from dependent to dependency.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Direction: mermaid.LeftRight})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Direction: Mermaid direction mapped onto rankdir (TD and TB become TB)
//   - Detailed: append the node ID under each label
//
// Only nodes that take part in an edge are emitted, matching the Mermaid
// output.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package nodelink
