// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from one or more starts.
//   - BFSResult carries the visit Order, the Depth of each reached vertex and
//     Parent links of the BFS forest (PathTo rebuilds a shortest path).
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - WithDirection follows out-edges (Forward, default), in-edges (Backward)
//     or both; WithFilterNeighbor prunes single steps; WithMaxDepth bounds the depth.
//
// Determinism
//
//	core returns neighbor IDs sorted ascending and BFS enqueues them in that
//	order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus sorting of neighbor lists.
//   - Memory: O(V).
//
// Usage
//
//	res, err := bfs.BFS(g, "start", bfs.WithMaxDepth(3))
//	reach, err := bfs.Multi(g, initial, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if a start vertex is not a member.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth, unknown Direction).
//   - ctx.Err() on cancellation, or a wrapped OnVisit error.
package bfs
