// Package levels computes breadth-first distance levels over a dependency
// graph and lists the packages found at a given level.
//
// # Directions
//
// With [Up], distances follow edges as recorded (dependent to dependency):
// level 0 holds packages nothing depends on, level 1 their direct
// dependencies, and so on. With [Down] every edge is reversed, so level 0
// holds leaf packages with no dependencies and higher levels move towards
// the roots.
//
// # Algorithm
//
// [Compute] runs a multi-source breadth-first search from every node with
// in-degree zero in the chosen direction. A node's level is the minimum
// number of hops from any root. Nodes that no root reaches (for example
// members of a cycle hanging off nothing) have no level and never appear in
// [Levels.At].
//
// If no node has in-degree zero, the whole graph is cyclic and every node is
// treated as a root. All nodes then land on level 0. This hides the cycle
// structure; [Levels.Cyclic] reports when it happened so callers can warn.
//
// # Output
//
// [Levels.At] returns [Entry] values sorted by bare package name, each with
// the sorted names of its direct dependencies in the original edge
// direction. [WriteText], [WriteJSON] and [WriteYAML] render a [Report].
package levels
