// Package builder generates deterministic directed graph fixtures.
//
// BuildGraph creates a core.Graph from graph options, resolves builder options
// into a configuration and runs constructors in order:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithID("ring")},
//	    []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.Cycle(4),
//	)
//
// Constructors: Path, Cycle, Star, Complete, RandomSparse.
// Vertex IDs come from an IDFn (DefaultIDFn, SymbolIDFn, SymbolNumberIDFn, ...).
// Edge IDs follow the graph's "e<N>" sequence, so equal inputs give equal graphs.
// WithSymmetric mirrors every generated edge; WithWeightFn and WithSeed control weights
// and randomness.
package builder
