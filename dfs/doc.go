// Package dfs implements depth-first search, cycle detection and topological
// sort on a core.Graph. All three follow edges in their direction (source -> target).
//
// What:
//
//   - DFS: pre-order and post-order hooks, cancellation, depth limiting,
//     neighbor filtering and forest traversal (WithFullTraversal).
//   - DetectCycles: colors vertices White/Gray/Black and records the cycle closed
//     by every back edge, rotated to its smallest vertex and deduplicated.
//   - TopologicalSort: reverse post-order of a DAG, ErrCycleDetected otherwise.
//
// Determinism:
//
//	Roots are tried in ascending ID order and core returns neighbors sorted,
//	so every result is reproducible for a given graph.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        TopologicalSort on a cyclic graph
//   - context errors and wrapped hook errors
package dfs
