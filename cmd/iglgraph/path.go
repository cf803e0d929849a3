package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iglsynth/iglsynth/core"
	"github.com/iglsynth/iglsynth/dijkstra"
)

func newPathCmd(a *app) *cobra.Command {
	var maxDist float64
	cmd := &cobra.Command{
		Use:   "path <file> <source> <target>",
		Short: "Print the cheapest path between two vertices",
		Long: `Find the minimum-weight directed path with Dijkstra's algorithm.

Examples:
  iglgraph path arena.json hall yard
  iglgraph path arena.json hall yard --max 10`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], core.WithLogger(a.logger()))
			if err != nil {
				return err
			}
			opts := []dijkstra.Option{dijkstra.Source(args[1])}
			if cmd.Flags().Changed("max") {
				if math.IsNaN(maxDist) || maxDist < 0 {
					return fmt.Errorf("--max must be non-negative, got %v", maxDist)
				}
				opts = append(opts, dijkstra.WithMaxDistance(maxDist))
			}
			res, err := dijkstra.Dijkstra(g, opts...)
			if err != nil {
				return err
			}
			path, err := res.PathTo(args[2])
			if err != nil {
				return err
			}
			edges, _ := res.EdgePathTo(args[2])
			_, err = fmt.Fprintf(a.stdout, "path:  %s\nedges: %s\ncost:  %g\n",
				strings.Join(path, " -> "), strings.Join(edges, " "), res.Dist[args[2]])

			return err
		},
	}
	cmd.Flags().Float64Var(&maxDist, "max", 0, "Maximum path cost to explore")

	return cmd
}
