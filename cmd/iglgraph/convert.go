package main

import (
	"github.com/spf13/cobra"

	"github.com/iglsynth/iglsynth/core"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a graph file between formats",
		Long: `Read a graph file and write it in the format named by the output extension.

Examples:
  iglgraph convert arena.json arena.graphml
  iglgraph convert arena.graphml arena.msgpack`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.logger()
			g, err := loadGraph(args[0], core.WithLogger(log))
			if err != nil {
				return err
			}
			if err = saveGraph(g, args[1]); err != nil {
				return err
			}
			log.Info("converted", "from", args[0], "to", args[1],
				"vertices", g.NumVertices(), "edges", g.NumEdges())

			return nil
		},
	}
}
