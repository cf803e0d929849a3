package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iglsynth/iglsynth"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the framework version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.stdout, iglsynth.Version)
			return err
		},
	}
}
