// Package core provides the directed graph container of the framework:
// identity-bearing vertices and edges owned by a Graph, with an optional
// multigraph mode.
//
// Storage is arena style. Edges reference endpoints by vertex ID, never by pointer,
// and two adjacency indices (out[source][target] and in[target][source]) keep
// membership and incident-edge queries at O(1) and O(degree).
//
// Failure policy:
//
//   - Expected outcomes are booleans: adding a duplicate vertex or edge, adding a
//     parallel edge to a simple graph, and removing an absent member return false.
//   - Structural violations are errors: ErrDanglingEndpoint when an edge endpoint is
//     not a member, ErrUnknownVertex when a query names a non-member,
//     entity.ErrMalformedData when a record cannot be reconstructed.
//   - A failed call leaves the graph unchanged. Batch methods (AddVertices, AddEdges,
//     RemoveVertices, RemoveEdges) report per-item results instead.
//
// Removing a vertex removes every incident edge, so the referential-integrity
// invariant (every endpoint is a member) always holds.
//
// A Graph has a single owner and no internal locking.
package core
