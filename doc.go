// Package iglsynth is a framework for modelling infinite games on graphs.
//
// The framework is organized as a small set of packages:
//
//	entity/     - identity and serialization contract shared by all objects
//	codec/      - JSON, YAML and MessagePack encodings of entity records
//	core/       - directed graph and multigraph container (Vertex, Edge, Graph)
//	game/       - actions and Kripke structures built on core graphs
//	bfs/, dfs/  - traversals, topological sort and cycle detection
//	dijkstra/   - weighted shortest paths
//	graphml/    - GraphML import and export
//	converters/ - bridges to gonum graphs (SCCs, simple cycles)
//	builder/    - deterministic generators (path, cycle, star, complete, random)
//	cmd/iglgraph - command-line front end
//
// Quick start:
//
//	g := core.NewGraph(core.WithID("arena"))
//	g.AddVertices([]*core.Vertex{core.NewVertex("A"), core.NewVertex("B")})
//	id, _, err := g.Connect("A", "B", core.WithLabel("go"))
//	data, err := core.Marshal(g, codec.YAML)
package iglsynth

// Version is the framework version.
const Version = "1.0.0"
