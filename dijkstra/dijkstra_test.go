// Package dijkstra_test validates Dijkstra under validation failures, basic
// topologies, multigraphs, MaxDistance and InfEdgeThreshold.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/iglsynth/iglsynth/core"
	"github.com/iglsynth/iglsynth/dijkstra"
)

// weighted builds a graph from (source, target, weight) triples; vertices are created on demand.
func weighted(t *testing.T, multi bool, edges ...any) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if multi {
		opts = append(opts, core.WithMultigraph())
	}
	g := core.NewGraph(opts...)
	for i := 0; i+2 < len(edges); i += 3 {
		u, v, w := edges[i].(string), edges[i+1].(string), edges[i+2].(float64)
		g.AddVertex(core.NewVertex(u))
		g.AddVertex(core.NewVertex(v))
		if _, ok, err := g.Connect(u, v, core.WithWeight(w)); err != nil || !ok {
			t.Fatalf("Connect(%s, %s): ok=%v err=%v", u, v, ok, err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := weighted(t, false, "A", "B", 1.0)
	neg := weighted(t, false, "A", "B", -5.0)
	nan := weighted(t, false, "A", "B", math.NaN())

	cases := []struct {
		name string
		g    *core.Graph
		opts []dijkstra.Option
		want error
	}{
		{"empty source", g, nil, dijkstra.ErrEmptySource},
		{"empty source beats nil graph", nil, nil, dijkstra.ErrEmptySource},
		{"nil graph", nil, []dijkstra.Option{dijkstra.Source("A")}, dijkstra.ErrNilGraph},
		{"unknown source", g, []dijkstra.Option{dijkstra.Source("X")}, dijkstra.ErrVertexNotFound},
		{"negative weight", neg, []dijkstra.Option{dijkstra.Source("A")}, dijkstra.ErrNegativeWeight},
		{"nan weight", nan, []dijkstra.Option{dijkstra.Source("A")}, dijkstra.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := dijkstra.Dijkstra(tc.g, tc.opts...); !errors.Is(err, tc.want) {
				t.Fatalf("got %v; want %v", err, tc.want)
			}
		})
	}
}

func TestOptionPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"max distance":  func() { dijkstra.WithMaxDistance(-1) },
		"inf threshold": func() { dijkstra.WithInfEdgeThreshold(0) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			fn()
		})
	}
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Directed(t *testing.T) {
	// A->B(2), A->C(1), C->B(1), B->D(3), C->D(5)
	g := weighted(t, false,
		"A", "B", 2.0,
		"A", "C", 1.0,
		"C", "B", 1.0,
		"B", "D", 3.0,
		"C", "D", 5.0,
	)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"A": 0, "B": 2, "C": 1, "D": 5}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
	// Equal-cost ties keep the first edge found: A->B (e1) is relaxed before C->B.
	path, err := res.PathTo("D")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(path, []string{"A", "B", "D"}) {
		t.Errorf("PathTo(D) = %v", path)
	}

	// Edges are one-way: nothing reaches A from D.
	back, err := dijkstra.Dijkstra(g, dijkstra.Source("D"))
	if err != nil {
		t.Fatal(err)
	}
	if back.Reached("A") {
		t.Error("A must be unreachable from D")
	}
	if _, err = back.PathTo("A"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Errorf("PathTo(A) err = %v; want ErrNoPath", err)
	}
	if _, err = back.PathTo("Z"); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Errorf("PathTo(Z) err = %v; want ErrVertexNotFound", err)
	}
}

func TestDijkstra_SourceOnly(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(core.NewVertex("solo"))
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("solo"))
	if err != nil {
		t.Fatal(err)
	}
	path, _ := res.PathTo("solo")
	edges, _ := res.EdgePathTo("solo")
	if len(path) != 1 || len(edges) != 0 || res.Dist["solo"] != 0 {
		t.Errorf("path=%v edges=%v dist=%v", path, edges, res.Dist)
	}
}

// ------------------------------------------------------------------------
// 3. Multigraphs, self-loops and limits
// ------------------------------------------------------------------------

func TestDijkstra_ParallelEdges(t *testing.T) {
	g := weighted(t, true,
		"A", "B", 4.0, // e1
		"A", "B", 1.5, // e2
		"B", "B", 0.0, // e3 self-loop
		"B", "C", 1.0, // e4
	)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["C"] != 2.5 {
		t.Errorf("Dist[C] = %v; want 2.5", res.Dist["C"])
	}
	edges, err := res.EdgePathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(edges, []string{"e2", "e4"}) {
		t.Errorf("EdgePathTo(C) = %v; want [e2 e4]", edges)
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := weighted(t, false, "A", "B", 1.0, "B", "C", 1.0, "C", "D", 1.0)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Reached("C") || res.Reached("D") {
		t.Errorf("Dist = %v; want C reached and D not", res.Dist)
	}
	if !math.IsInf(res.Dist["D"], 1) {
		t.Errorf("Dist[D] = %v; want +Inf", res.Dist["D"])
	}
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := weighted(t, false, "A", "B", 100.0, "A", "C", 1.0, "C", "B", 5.0)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(50))
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("B")
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["B"] != 6 || !reflect.DeepEqual(path, []string{"A", "C", "B"}) {
		t.Errorf("Dist[B]=%v path=%v", res.Dist["B"], path)
	}
}
