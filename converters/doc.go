// Package converters adapts core.Graph to and from gonum graphs
// (gonum.org/v1/gonum/graph) so gonum's algorithms can run on iglsynth graphs.
//
//   - ToGonum exports to a *multi.DirectedGraph; parallel edges become parallel lines.
//   - FromGonum imports any graph.Directed; parallel lines are kept when the
//     source is a graph.DirectedMultigraph.
//   - StronglyConnected and SimpleCycles run topo.TarjanSCC and
//     topo.DirectedCyclesIn and map the result back to vertex IDs.
//
// Gonum node IDs are assigned in ascending vertex-ID order, so exports are deterministic.
package converters
