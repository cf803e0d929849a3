// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/iglsynth/iglsynth/codec"
	"github.com/iglsynth/iglsynth/core"
)

// ExampleGraph builds A -> B and queries both directions.
func ExampleGraph() {
	g := core.NewGraph(core.WithID("demo"))
	g.AddVertices([]*core.Vertex{core.NewVertex("A"), core.NewVertex("B")})
	id, _, _ := g.Connect("A", "B")

	out, _ := g.OutNeighbors("A")
	in, _ := g.InNeighbors("B")
	fmt.Println(g, g.NumVertices(), g.NumEdges(), id)
	fmt.Println(out, in)
	// Output:
	// <Graph object with id=demo> 2 1 e1
	// [B] [A]
}

// ExampleGraph_RemoveVertex shows that removing a vertex removes its edges.
func ExampleGraph_RemoveVertex() {
	g := core.NewGraph()
	g.AddVertices([]*core.Vertex{core.NewVertex("A"), core.NewVertex("B"), core.NewVertex("C")})
	_, _, _ = g.Connect("A", "B")
	_, _, _ = g.Connect("B", "C")

	g.RemoveVertex("B")
	fmt.Println(g.NumVertices(), g.NumEdges())
	// Output:
	// 2 0
}

// ExampleGraph_AddEdge shows the dangling-endpoint failure.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	g.AddVertex(core.NewVertex("A"))

	ok, err := g.AddEdge(core.NewEdge("ax", "A", "X"))
	fmt.Println(ok, errors.Is(err, core.ErrDanglingEndpoint))
	// Output:
	// false true
}

// ExampleMarshal encodes a graph as JSON.
func ExampleMarshal() {
	g := core.NewGraph(core.WithID("g"))
	g.AddVertex(core.NewVertex("A"))
	data, _ := core.Marshal(g, codec.JSON)
	fmt.Println(string(data))
	// Output:
	// {
	//   "id": "g",
	//   "class_name": "Graph",
	//   "is_multigraph": false,
	//   "allow_loops": true,
	//   "vertices": [
	//     {
	//       "id": "A",
	//       "class_name": "Vertex"
	//     }
	//   ],
	//   "edges": []
	// }
}
