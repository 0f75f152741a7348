// Package pkg provides the libraries behind the cargograph tools.
//
// # Overview
//
// cargograph turns the output of "cargo tree" into a Mermaid dependency graph
// and answers "which crates sit at depth N" questions about such graphs:
//
//  1. [cargotree] - Parse cargo tree output with blacklist re-parenting
//  2. [graph] - Directed graph of labeled nodes with deduplicated edges
//  3. [mermaid] - Write and read Mermaid flowchart text
//  4. [levels] - Multi-source BFS levels and level listings
//  5. [render/nodelink] - Graphviz DOT and SVG output
//
// # Data Flow
//
//	cargo tree output
//	         ↓
//	   [cargotree.Parse] → [graph.Graph] → [mermaid.Write]
//	                                     ↘ [nodelink.ToDOT] → SVG
//
//	Mermaid file
//	         ↓
//	   [mermaid.Read] → [levels.Compute] → [levels.Write]
//
// Errors returned to the command line carry a code from [errors].
package pkg
