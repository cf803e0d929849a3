// Package graphml saves and loads core.Graph values as GraphML documents.
//
// Layout written by Write:
//
//	<graphml xmlns=...>
//	  <!-- generated-by comment -->
//	  <key id="g.is_multigraph" for="graph" attr.name="is_multigraph" attr.type="boolean"/>
//	  ...
//	  <graph id="G" edgedefault="directed" parse.nodes="N" parse.edges="M">
//	    <data key="g.graph_class_name">Graph</data>
//	    <node id="A"><data key="n.label">...</data></node>
//	    <edge id="e1" source="A" target="B"><data key="e.weight">2.5</data></edge>
//	  </graph>
//	</graphml>
//
// Vertex and edge Attrs become one key per attribute name ("n.attr.<name>",
// "e.attr.<name>"). Read accepts documents in this layout; every structural
// problem is reported with entity.ErrMalformedData.
package graphml
