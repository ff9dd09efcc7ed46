// Package cmd provides the CLI commands for rtreedemo.
package cmd

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// Trace flag
var traceMode bool

// NewRootCmd creates the root command for rtreedemo CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rtreedemo",
		Short: "Exercise an in-memory R-Tree against a linear scan",
		Long: `rtreedemo scatters targets over a grid of unit cells, indexes them in
an R-Tree and answers one range or k-nearest-neighbor query with both
the index and a linear scan, reporting the answers and their timing.

The shape of the tree can be printed and recorded as a wireframe file
for replay by other tools.`,
		Version:       Version,
		SilenceUsage: true,
	}

	cmd.SetVersionTemplate("rtreedemo version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Trace index activity to stderr")
	cmd.PersistentPreRunE = startTracing
	cmd.PersistentPostRunE = stopTracing

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startTracing routes debug tracing to the command's error stream if
// the trace flag is set.
func startTracing(cmd *cobra.Command, _ []string) error {
	if !traceMode {
		return nil
	}
	t := gologadapter.New()
	t.SetTraceLevel(tracing.LevelDebug)
	t.SetOutput(cmd.ErrOrStderr())
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return t
	}))
	t.Debugf("tracing enabled")
	return nil
}

// stopTracing restores the no-op tracer.
func stopTracing(_ *cobra.Command, _ []string) error {
	if traceMode {
		tracing.SetTraceSelector(nil)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
