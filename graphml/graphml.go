// SPDX-License-Identifier: MIT

package graphml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iglsynth/iglsynth/core"
	"github.com/iglsynth/iglsynth/entity"
)

// Namespaces and the comment placed at the top of written documents.
const (
	NamespaceGraphML = "http://graphml.graphdrawing.org/xmlns"
	NamespaceXSI     = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation   = "http://graphml.graphdrawing.org/xmlns http://graphml.graphdrawing.org/xmlns/1.0/graphml.xsd"
	GeneratedBy      = " This file is automatically generated by iglsynth. "
)

// Graph-level data keys.
const (
	KeyGraphClass  = "graph_class_name"
	KeyVertexClass = "vertex_class_name"
	KeyEdgeClass   = "edge_class_name"
	KeyMultigraph  = "is_multigraph"
	KeyAllowLoops  = "allow_loops"
	KeyLabel       = "label"
	KeyWeight      = "weight"
)

// Key domains.
const (
	forGraph = "graph"
	forNode  = "node"
	forEdge  = "edge"
)

// keyPrefix maps a domain to the prefix of its key IDs.
var keyPrefix = map[string]string{forGraph: "g.", forNode: "n.", forEdge: "e."}

const attrPrefix = "attr."

type document struct {
	XMLName        xml.Name    `xml:"graphml"`
	Namespace      string      `xml:"xmlns,attr,omitempty"`
	NamespaceXSI   string      `xml:"xmlns:xsi,attr,omitempty"`
	SchemaLocation string      `xml:"xsi:schemaLocation,attr,omitempty"`
	Comment        xml.Comment `xml:",comment"`
	Keys           []key       `xml:"key"`
	Graphs         []graph     `xml:"graph"`
}

type key struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type data struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type graph struct {
	ID          string `xml:"id,attr,omitempty"`
	EdgeDefault string `xml:"edgedefault,attr"`
	ParseNodes  string `xml:"parse.nodes,attr,omitempty"`
	ParseEdges  string `xml:"parse.edges,attr,omitempty"`
	Data        []data `xml:"data"`
	Nodes       []node `xml:"node"`
	Edges       []edge `xml:"edge"`
}

type node struct {
	ID   string `xml:"id,attr"`
	Data []data `xml:"data"`
}

type edge struct {
	ID       string `xml:"id,attr,omitempty"`
	Source   string `xml:"source,attr"`
	Target   string `xml:"target,attr"`
	Directed string `xml:"directed,attr,omitempty"`
	Data     []data `xml:"data"`
}

func keyID(domain, name string) string { return keyPrefix[domain] + name }

// ErrUnencodable is returned by Write when an ID, label or attribute cannot be
// represented in XML 1.0 (control characters other than tab, newline and carriage
// return, or invalid UTF-8). Such text would not survive a Read.
var ErrUnencodable = errors.New("graphml: text not representable in XML")

// Write encodes g as an indented GraphML document with an XML declaration.
// Nothing is written when the graph holds text that fails ErrUnencodable.
func Write(w io.Writer, g *core.Graph) error {
	rec := g.Serialize()
	if err := checkRecord(rec); err != nil {
		return err
	}
	doc := document{
		Namespace:      NamespaceGraphML,
		NamespaceXSI:   NamespaceXSI,
		SchemaLocation: SchemaLocation,
		Comment:        xml.Comment(GeneratedBy),
		Keys: []key{
			{ID: keyID(forGraph, KeyGraphClass), For: forGraph, Name: KeyGraphClass, Type: "string"},
			{ID: keyID(forGraph, KeyVertexClass), For: forGraph, Name: KeyVertexClass, Type: "string"},
			{ID: keyID(forGraph, KeyEdgeClass), For: forGraph, Name: KeyEdgeClass, Type: "string"},
			{ID: keyID(forGraph, KeyMultigraph), For: forGraph, Name: KeyMultigraph, Type: "boolean"},
			{ID: keyID(forGraph, KeyAllowLoops), For: forGraph, Name: KeyAllowLoops, Type: "boolean"},
			{ID: keyID(forNode, KeyLabel), For: forNode, Name: KeyLabel, Type: "string"},
			{ID: keyID(forEdge, KeyLabel), For: forEdge, Name: KeyLabel, Type: "string"},
			{ID: keyID(forEdge, KeyWeight), For: forEdge, Name: KeyWeight, Type: "double"},
		},
	}
	gx := graph{
		ID:          rec.ID,
		EdgeDefault: "directed",
		ParseNodes:  strconv.Itoa(len(rec.Vertices)),
		ParseEdges:  strconv.Itoa(len(rec.Edges)),
		Data: []data{
			{Key: keyID(forGraph, KeyGraphClass), Value: rec.ClassName},
			{Key: keyID(forGraph, KeyVertexClass), Value: core.VertexClass},
			{Key: keyID(forGraph, KeyEdgeClass), Value: core.EdgeClass},
			{Key: keyID(forGraph, KeyMultigraph), Value: strconv.FormatBool(rec.IsMultigraph)},
			{Key: keyID(forGraph, KeyAllowLoops), Value: strconv.FormatBool(rec.LoopsAllowed())},
		},
	}

	nodeAttrs := make(map[string]struct{})
	for _, v := range rec.Vertices {
		n := node{ID: v.ID}
		if v.Label != "" {
			n.Data = append(n.Data, data{Key: keyID(forNode, KeyLabel), Value: v.Label})
		}
		n.Data = appendAttrs(n.Data, forNode, v.Attrs, nodeAttrs)
		gx.Nodes = append(gx.Nodes, n)
	}
	edgeAttrs := make(map[string]struct{})
	for _, e := range rec.Edges {
		ex := edge{ID: e.ID, Source: e.SourceID, Target: e.TargetID}
		if e.Label != "" {
			ex.Data = append(ex.Data, data{Key: keyID(forEdge, KeyLabel), Value: e.Label})
		}
		if e.Weight != 0 {
			ex.Data = append(ex.Data, data{Key: keyID(forEdge, KeyWeight), Value: strconv.FormatFloat(e.Weight, 'g', -1, 64)})
		}
		ex.Data = appendAttrs(ex.Data, forEdge, e.Attrs, edgeAttrs)
		gx.Edges = append(gx.Edges, ex)
	}
	doc.Keys = append(doc.Keys, attrKeys(forNode, nodeAttrs)...)
	doc.Keys = append(doc.Keys, attrKeys(forEdge, edgeAttrs)...)
	doc.Graphs = []graph{gx}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("graphml: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphml: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("graphml: encode: %w", err)
	}
	_, err := io.WriteString(w, "\n")

	return err
}

// checkRecord verifies every string Write would emit.
func checkRecord(rec core.GraphRecord) error {
	if err := checkText("graph id", rec.ID); err != nil {
		return err
	}
	for _, v := range rec.Vertices {
		if err := checkElement("vertex "+strconv.Quote(v.ID), v.ID, v.Label, v.Attrs); err != nil {
			return err
		}
	}
	for _, e := range rec.Edges {
		if err := checkElement("edge "+strconv.Quote(e.ID), e.ID, e.Label, e.Attrs); err != nil {
			return err
		}
	}

	return nil
}

func checkElement(what, id, label string, attrs map[string]string) error {
	if err := checkText(what+" id", id); err != nil {
		return err
	}
	if err := checkText(what+" label", label); err != nil {
		return err
	}
	for name, value := range attrs {
		if err := checkText(what+" attr name", name); err != nil {
			return err
		}
		if err := checkText(what+" attr "+strconv.Quote(name), value); err != nil {
			return err
		}
	}

	return nil
}

// checkText accepts the XML 1.0 Char production.
func checkText(what, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrUnencodable, what)
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("%w: %s contains %U", ErrUnencodable, what, r)
		}
	}

	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}

// appendAttrs appends one data element per attribute in name order and records the names seen.
func appendAttrs(out []data, domain string, attrs map[string]string, seen map[string]struct{}) []data {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		seen[name] = struct{}{}
		out = append(out, data{Key: keyID(domain, attrPrefix+name), Value: attrs[name]})
	}

	return out
}

func attrKeys(domain string, names map[string]struct{}) []key {
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	slices.Sort(sorted)
	keys := make([]key, len(sorted))
	for i, name := range sorted {
		keys[i] = key{ID: keyID(domain, attrPrefix+name), For: domain, Name: name, Type: "string"}
	}

	return keys
}

// keyRef is a declared key resolved to its domain and logical name.
type keyRef struct {
	domain string
	name   string // "label", "weight", "attr.<name>", or a graph key
}

// Read decodes a GraphML document written by Write (or laid out the same way)
// and reconstructs the graph. opts are applied after the document's own flags.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, malformed("decode: %v", err)
	}
	if len(doc.Graphs) != 1 {
		return nil, malformed("want exactly one <graph>, got %d", len(doc.Graphs))
	}
	keys, err := resolveKeys(doc.Keys)
	if err != nil {
		return nil, err
	}
	gx := doc.Graphs[0]
	if gx.EdgeDefault != "directed" {
		return nil, malformed("edgedefault %q, want directed", gx.EdgeDefault)
	}

	rec := core.GraphRecord{
		Header:   entity.Header{ID: entity.IDOrNew(gx.ID), ClassName: core.GraphClass},
		Vertices: make([]core.VertexRecord, 0, len(gx.Nodes)),
		Edges:    make([]core.EdgeRecord, 0, len(gx.Edges)),
	}
	if err = readGraphData(&rec, gx.Data, keys); err != nil {
		return nil, err
	}
	for _, n := range gx.Nodes {
		vr := core.VertexRecord{Header: entity.Header{ID: n.ID, ClassName: core.VertexClass}}
		for _, d := range n.Data {
			ref, err := lookup(keys, d.Key, forNode)
			if err != nil {
				return nil, err
			}
			if ref.name == KeyLabel {
				vr.Label = d.Value
				continue
			}
			vr.Attrs = setAttr(vr.Attrs, ref.name, d.Value)
		}
		rec.Vertices = append(rec.Vertices, vr)
	}
	for _, ex := range gx.Edges {
		if ex.Directed != "" && ex.Directed != "true" {
			return nil, malformed("edge %q is undirected", ex.ID)
		}
		er := core.EdgeRecord{
			Header:   entity.Header{ID: entity.IDOrNew(ex.ID), ClassName: core.EdgeClass},
			SourceID: ex.Source,
			TargetID: ex.Target,
		}
		for _, d := range ex.Data {
			ref, err := lookup(keys, d.Key, forEdge)
			if err != nil {
				return nil, err
			}
			switch ref.name {
			case KeyLabel:
				er.Label = d.Value
			case KeyWeight:
				w, perr := strconv.ParseFloat(strings.TrimSpace(d.Value), 64)
				if perr != nil {
					return nil, malformed("edge %q weight %q: %v", ex.ID, d.Value, perr)
				}
				er.Weight = w
			default:
				er.Attrs = setAttr(er.Attrs, ref.name, d.Value)
			}
		}
		rec.Edges = append(rec.Edges, er)
	}
	if err = checkCount("parse.nodes", gx.ParseNodes, len(rec.Vertices)); err != nil {
		return nil, err
	}
	if err = checkCount("parse.edges", gx.ParseEdges, len(rec.Edges)); err != nil {
		return nil, err
	}

	return core.GraphFromRecord(rec, opts...)
}

func resolveKeys(decl []key) (map[string]keyRef, error) {
	keys := make(map[string]keyRef, len(decl))
	for _, k := range decl {
		if _, dup := keys[k.ID]; dup {
			return nil, malformed("duplicate key %q", k.ID)
		}
		name := k.Name
		switch k.For {
		case forGraph:
		case forNode, forEdge:
			builtin := k.Name == KeyLabel || (k.For == forEdge && k.Name == KeyWeight)
			if !builtin || strings.HasPrefix(k.ID, keyID(k.For, attrPrefix)) {
				name = attrPrefix + k.Name
			}
		default:
			return nil, malformed("key %q: unsupported domain %q", k.ID, k.For)
		}
		keys[k.ID] = keyRef{domain: k.For, name: name}
	}

	return keys, nil
}

func lookup(keys map[string]keyRef, id, domain string) (keyRef, error) {
	ref, ok := keys[id]
	if !ok {
		return keyRef{}, malformed("undeclared key %q", id)
	}
	if ref.domain != domain {
		return keyRef{}, malformed("key %q is declared for %s, used on %s", id, ref.domain, domain)
	}

	return ref, nil
}

func readGraphData(rec *core.GraphRecord, ds []data, keys map[string]keyRef) error {
	for _, d := range ds {
		ref, err := lookup(keys, d.Key, forGraph)
		if err != nil {
			return err
		}
		value := strings.TrimSpace(d.Value)
		switch ref.name {
		case KeyGraphClass:
			if value != core.GraphClass {
				return malformed("graph class %q, want %q", value, core.GraphClass)
			}
		case KeyVertexClass:
			if value != core.VertexClass {
				return malformed("vertex class %q, want %q", value, core.VertexClass)
			}
		case KeyEdgeClass:
			if value != core.EdgeClass {
				return malformed("edge class %q, want %q", value, core.EdgeClass)
			}
		case KeyMultigraph:
			if rec.IsMultigraph, err = strconv.ParseBool(value); err != nil {
				return malformed("%s %q: %v", KeyMultigraph, value, err)
			}
		case KeyAllowLoops:
			loops, perr := strconv.ParseBool(value)
			if perr != nil {
				return malformed("%s %q: %v", KeyAllowLoops, value, perr)
			}
			rec.AllowLoops = &loops
		default:
			return malformed("unknown graph key %q", ref.name)
		}
	}

	return nil
}

func setAttr(attrs map[string]string, name, value string) map[string]string {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	attrs[strings.TrimPrefix(name, attrPrefix)] = value

	return attrs
}

func checkCount(attr, declared string, got int) error {
	if declared == "" {
		return nil
	}
	n, err := strconv.Atoi(declared)
	if err != nil || n != got {
		return malformed("%s=%q but document has %d", attr, declared, got)
	}

	return nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: graphml: %s", entity.ErrMalformedData, fmt.Sprintf(format, args...))
}
