// Package cargotree parses the indented output of "cargo tree" into a
// dependency graph.
//
// # Input Format
//
// Each nesting level is indented by four runes ("│   " or "    ") and
// entries start with a branch marker:
//
//	app v1.0.0
//	├── serde v1.0.200
//	│   └── serde_derive v1.0.200 (proc-macro)
//	[dev-dependencies]
//	└── tokio v1.37.0
//
// Unindented lines are roots; bracketed lines are section annotations.
// Lines that match none of the recognized shapes are skipped, since the
// exact output varies between cargo versions.
//
// # Node IDs
//
// Node IDs are derived from labels by [SanitizeID] so that they are valid in
// diagram syntaxes: "serde v1.0.200" becomes "serde_v1_0_200".
//
// # Blacklists
//
// A blacklist is a [NameSet], usually built with [ExpandNames] from a file
// read by [LoadNames]. Blacklisted packages are removed from the edge list
// and their children are attached to the nearest remaining ancestor.
package cargotree
