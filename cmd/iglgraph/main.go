// Package main provides the iglgraph CLI: inspect, convert and generate graph files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iglsynth/iglsynth"
	"github.com/iglsynth/iglsynth/entity"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}

	return ExitSuccess
}

// exitCode maps an error to its exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, entity.ErrMalformedData):
		return ExitDataError
	default:
		return ExitError
	}
}

// app carries state shared by subcommands of one invocation.
type app struct {
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
}

// logger returns a text logger on stderr when --verbose is set.
func (a *app) logger() *slog.Logger {
	if !a.verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "iglgraph",
		Short: "Inspect, convert and generate directed graph files",
		Long: `iglgraph works with graph files in JSON, YAML, MessagePack and GraphML.

The format of every file is chosen by its extension:
  .json  .yaml/.yml  .msgpack/.mp/.mpk  .graphml/.xml`,
		Version:       iglsynth.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log graph operations to stderr")

	root.AddCommand(
		newVersionCmd(a),
		newStatsCmd(a),
		newConvertCmd(a),
		newGenerateCmd(a),
		newPathCmd(a),
	)

	return root
}
