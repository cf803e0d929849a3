// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph types, construction options and sentinel errors.
//
// Errors:
//
//	ErrUnknownVertex     - a query referenced a vertex that is not a member.
//	ErrDanglingEndpoint  - an edge endpoint is not a member at insertion time.
//	ErrEdgeNotFound      - a lookup referenced an edge that is not a member.
//	ErrLoopNotAllowed    - self-loop while loops are disabled.
//	ErrNilEdge           - nil *Edge passed to a mutating method.
package core

import (
	"errors"
	"log/slog"
	"maps"

	"github.com/iglsynth/iglsynth/entity"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownVertex indicates a query referenced a non-member vertex.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrDanglingEndpoint indicates an edge whose source or target is not a member.
	ErrDanglingEndpoint = errors.New("core: dangling edge endpoint")

	// ErrEdgeNotFound indicates a lookup of a non-member edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilEdge indicates a nil edge pointer.
	ErrNilEdge = errors.New("core: edge is nil")
)

// Class names used in string forms and records.
const (
	VertexClass = "Vertex"
	EdgeClass   = "Edge"
	GraphClass  = "Graph"
)

// Vertex is a graph node. Its ID is fixed at construction; Label and Attrs are payload.
type Vertex struct {
	id string

	// Label is an optional human-readable name.
	Label string

	// Attrs stores arbitrary string payload. It is copied when the vertex enters or leaves a Graph.
	Attrs map[string]string
}

// NewVertex returns a vertex with the given id, or a generated one when id is empty.
func NewVertex(id string) *Vertex {
	return &Vertex{id: entity.IDOrNew(id)}
}

// ID returns the immutable vertex identifier.
func (v *Vertex) ID() string { return v.id }

// ClassName returns "Vertex".
func (v *Vertex) ClassName() string { return VertexClass }

// String returns "<Vertex object with id=ID>".
func (v *Vertex) String() string { return entity.Describe(v) }

// IsNil reports whether the receiver is a nil pointer.
func (v *Vertex) IsNil() bool { return v == nil }

func (v *Vertex) clone() *Vertex {
	return &Vertex{id: v.id, Label: v.Label, Attrs: cloneAttrs(v.Attrs)}
}

// Edge is a directed connection source -> target. Endpoints reference vertices by ID
// and, like the edge ID, are fixed at construction.
type Edge struct {
	id     string
	source string
	target string

	// Weight is an optional cost or capacity.
	Weight float64

	// Label is an optional name, e.g. the action that fires the transition.
	Label string

	// Attrs stores arbitrary string payload.
	Attrs map[string]string
}

// NewEdge returns an edge source -> target. An empty id is replaced by a generated one.
func NewEdge(id, source, target string) *Edge {
	return &Edge{id: entity.IDOrNew(id), source: source, target: target}
}

// ID returns the immutable edge identifier.
func (e *Edge) ID() string { return e.id }

// Source returns the source vertex ID.
func (e *Edge) Source() string { return e.source }

// Target returns the target vertex ID.
func (e *Edge) Target() string { return e.target }

// IsLoop reports whether source == target.
func (e *Edge) IsLoop() bool { return e.source == e.target }

// ClassName returns "Edge".
func (e *Edge) ClassName() string { return EdgeClass }

// String returns "<Edge object with id=ID>".
func (e *Edge) String() string { return entity.Describe(e) }

// IsNil reports whether the receiver is a nil pointer.
func (e *Edge) IsNil() bool { return e == nil }

func (e *Edge) clone() *Edge {
	c := *e
	c.Attrs = cloneAttrs(e.Attrs)

	return &c
}

// cloneAttrs copies m; empty maps collapse to nil so records compare equal after a round trip.
func cloneAttrs(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}

	return maps.Clone(m)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithID sets the graph identifier. An empty id keeps the generated one.
func WithID(id string) GraphOption {
	return func(g *Graph) {
		if id != "" {
			g.id = id
		}
	}
}

// WithMultigraph permits parallel edges between the same ordered vertex pair.
func WithMultigraph() GraphOption {
	return func(g *Graph) { g.multigraph = true }
}

// WithoutLoops rejects self-loops with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithLogger routes debug records about rejected mutations to l. Nil is ignored.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithVertexRemovedHook registers fn to run after a vertex and its incident edges
// have been removed. Hooks run in registration order.
func WithVertexRemovedHook(fn func(id string)) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.onVertexRemoved = append(g.onVertexRemoved, fn)
		}
	}
}

// EdgeOption configures an edge created by Graph.Connect.
type EdgeOption func(*Edge)

// WithEdgeID fixes the edge identifier instead of the graph's "e<N>" sequence.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) {
		if id != "" {
			e.id = id
		}
	}
}

// WithWeight sets the edge weight.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// WithLabel sets the edge label.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// WithAttr sets one edge attribute.
func WithAttr(key, value string) EdgeOption {
	return func(e *Edge) {
		if e.Attrs == nil {
			e.Attrs = make(map[string]string)
		}
		e.Attrs[key] = value
	}
}

// adjacency[a][b] is the set of edge IDs between a and b.
// Graph keeps two of them: out (source -> target) and in (target -> source).
type adjacency map[string]map[string]map[string]struct{}

// Graph is an in-memory directed graph that exclusively owns its vertices and edges.
//
// A Graph has a single owner. It performs no internal locking; callers that share an
// instance across goroutines must serialize access themselves.
type Graph struct {
	id string

	// Configuration flags, immutable after NewGraph.
	multigraph bool
	allowLoops bool

	logger          *slog.Logger
	onVertexRemoved []func(id string)

	// Storage
	nextEdgeID uint64             // sequence for Connect-generated edge IDs
	vertices   map[string]*Vertex // vertex ID -> Vertex
	edges      map[string]*Edge   // edge ID -> Edge
	out        adjacency          // out[source][target][edgeID]
	in         adjacency          // in[target][source][edgeID]
}

// NewGraph creates an empty Graph.
// By default the graph is simple (no parallel edges), allows self-loops,
// has a generated ID and logs nothing.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		id:         entity.NewID(),
		allowLoops: true,
		logger:     slog.New(slog.DiscardHandler),
		vertices:   make(map[string]*Vertex),
		edges:      make(map[string]*Edge),
		out:        make(adjacency),
		in:         make(adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
