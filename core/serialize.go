// SPDX-License-Identifier: MIT
//
// File: serialize.go
// Role: Records for Vertex, Edge and Graph, and their reconstruction.
// Determinism:
//   - GraphRecord lists vertices and edges sorted by ID, so equal graphs serialize identically.
// Round-trip law:
//   - GraphFromRecord(g.Serialize()) reproduces the same ID, flags, vertex and edge sets.

package core

import (
	"fmt"

	"github.com/iglsynth/iglsynth/codec"
	"github.com/iglsynth/iglsynth/entity"
)

// VertexRecord is the serialized form of a Vertex.
type VertexRecord struct {
	entity.Header `json:",inline" yaml:",inline" msgpack:",inline"`
	Label         string            `json:"label,omitempty" yaml:"label,omitempty" msgpack:"label,omitempty"`
	Attrs         map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" msgpack:"attrs,omitempty"`
}

// EdgeRecord is the serialized form of an Edge.
type EdgeRecord struct {
	entity.Header `json:",inline" yaml:",inline" msgpack:",inline"`
	SourceID      string            `json:"source_id" yaml:"source_id" msgpack:"source_id"`
	TargetID      string            `json:"target_id" yaml:"target_id" msgpack:"target_id"`
	Weight        float64           `json:"weight,omitempty" yaml:"weight,omitempty" msgpack:"weight,omitempty"`
	Label         string            `json:"label,omitempty" yaml:"label,omitempty" msgpack:"label,omitempty"`
	Attrs         map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" msgpack:"attrs,omitempty"`
}

// GraphRecord is the serialized form of a Graph.
type GraphRecord struct {
	entity.Header `json:",inline" yaml:",inline" msgpack:",inline"`
	IsMultigraph  bool           `json:"is_multigraph" yaml:"is_multigraph" msgpack:"is_multigraph"`
	AllowLoops    *bool          `json:"allow_loops" yaml:"allow_loops" msgpack:"allow_loops"`
	Vertices      []VertexRecord `json:"vertices" yaml:"vertices" msgpack:"vertices"`
	Edges         []EdgeRecord   `json:"edges" yaml:"edges" msgpack:"edges"`
}

// LoopsAllowed reports the loop policy of the record. An absent allow_loops
// field keeps the NewGraph default: loops allowed.
func (r GraphRecord) LoopsAllowed() bool {
	return r.AllowLoops == nil || *r.AllowLoops
}

// Serialize returns the record of v.
func (v *Vertex) Serialize() VertexRecord {
	return VertexRecord{Header: entity.HeaderOf(v), Label: v.Label, Attrs: cloneAttrs(v.Attrs)}
}

// VertexFromRecord reconstructs a Vertex. Fails with entity.ErrMalformedData on a bad header.
func VertexFromRecord(rec VertexRecord) (*Vertex, error) {
	if err := rec.Check(VertexClass); err != nil {
		return nil, err
	}

	return &Vertex{id: rec.ID, Label: rec.Label, Attrs: cloneAttrs(rec.Attrs)}, nil
}

// Serialize returns the record of e.
func (e *Edge) Serialize() EdgeRecord {
	return EdgeRecord{
		Header:   entity.HeaderOf(e),
		SourceID: e.source,
		TargetID: e.target,
		Weight:   e.Weight,
		Label:    e.Label,
		Attrs:    cloneAttrs(e.Attrs),
	}
}

// EdgeFromRecord reconstructs an Edge. Both endpoint IDs are required.
func EdgeFromRecord(rec EdgeRecord) (*Edge, error) {
	if err := rec.Check(EdgeClass); err != nil {
		return nil, err
	}
	if rec.SourceID == "" || rec.TargetID == "" {
		return nil, fmt.Errorf("%w: edge %q needs source_id and target_id", entity.ErrMalformedData, rec.ID)
	}

	return &Edge{
		id:     rec.ID,
		source: rec.SourceID,
		target: rec.TargetID,
		Weight: rec.Weight,
		Label:  rec.Label,
		Attrs:  cloneAttrs(rec.Attrs),
	}, nil
}

// Serialize returns the full graph structure: identity, mode flags, vertices and edges.
// Complexity: O(V log V + E log E).
func (g *Graph) Serialize() GraphRecord {
	loops := g.allowLoops
	rec := GraphRecord{
		Header:       entity.HeaderOf(g),
		IsMultigraph: g.multigraph,
		AllowLoops:   &loops,
		Vertices:     make([]VertexRecord, 0, len(g.vertices)),
		Edges:        make([]EdgeRecord, 0, len(g.edges)),
	}
	for _, id := range g.Vertices() {
		rec.Vertices = append(rec.Vertices, g.vertices[id].Serialize())
	}
	for _, e := range g.Edges() {
		rec.Edges = append(rec.Edges, e.Serialize())
	}

	return rec
}

// GraphFromRecord reconstructs a Graph. opts are applied after the record's own
// configuration (use them for WithLogger or hooks).
//
// Errors (all wrap entity.ErrMalformedData):
//   - bad graph, vertex or edge header;
//   - duplicate vertex or edge IDs;
//   - edges with dangling endpoints, forbidden loops, or parallel edges in a simple graph.
func GraphFromRecord(rec GraphRecord, opts ...GraphOption) (*Graph, error) {
	if err := rec.Check(GraphClass); err != nil {
		return nil, err
	}
	base := []GraphOption{WithID(rec.ID)}
	if rec.IsMultigraph {
		base = append(base, WithMultigraph())
	}
	if !rec.LoopsAllowed() {
		base = append(base, WithoutLoops())
	}
	g := NewGraph(append(base, opts...)...)

	for _, vr := range rec.Vertices {
		v, err := VertexFromRecord(vr)
		if err != nil {
			return nil, fmt.Errorf("graph %q: %w", rec.ID, err)
		}
		if !g.AddVertex(v) {
			return nil, fmt.Errorf("%w: graph %q: duplicate vertex %q", entity.ErrMalformedData, rec.ID, v.id)
		}
	}
	for _, er := range rec.Edges {
		e, err := EdgeFromRecord(er)
		if err != nil {
			return nil, fmt.Errorf("graph %q: %w", rec.ID, err)
		}
		ok, err := g.AddEdge(e)
		if err != nil {
			return nil, fmt.Errorf("%w: graph %q: %v", entity.ErrMalformedData, rec.ID, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: graph %q: edge %q duplicates an existing edge", entity.ErrMalformedData, rec.ID, e.id)
		}
	}

	return g, nil
}

// Marshal serializes g and encodes the record in format f.
func Marshal(g *Graph, f codec.Format) ([]byte, error) {
	return codec.Marshal(f, g.Serialize())
}

// Unmarshal decodes a GraphRecord in format f and reconstructs the Graph.
func Unmarshal(data []byte, f codec.Format, opts ...GraphOption) (*Graph, error) {
	var rec GraphRecord
	if err := codec.Unmarshal(f, data, &rec); err != nil {
		return nil, err
	}

	return GraphFromRecord(rec, opts...)
}
