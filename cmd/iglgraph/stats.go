package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iglsynth/iglsynth/converters"
	"github.com/iglsynth/iglsynth/core"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print vertex and edge counts, flags, left-totality and SCC count",
		Long: `Print a summary of a graph file.

Examples:
  iglgraph stats arena.json
  iglgraph stats arena.graphml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], core.WithLogger(a.logger()))
			if err != nil {
				return err
			}
			return printStats(a, g)
		},
	}
}

func printStats(a *app, g *core.Graph) error {
	st := g.Stats()
	_, err := fmt.Fprintf(a.stdout,
		"id:          %s\nvertices:    %d\nedges:       %d\nself-loops:  %d\nmultigraph:  %t\nloops:       %t\nleft-total:  %t\nscc:         %d\n",
		g.ID(), st.VertexCount, st.EdgeCount, st.SelfLoopCount,
		st.Multigraph, st.AllowsLoops, st.LeftTotal(), len(converters.StronglyConnected(g)))

	return err
}
