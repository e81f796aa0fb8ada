// Package cmd holds the jobslots cobra commands.
package cmd

import (
	"github.com/grovetools/jobslots/cli"
	"github.com/grovetools/jobslots/pkg/profiling"
	"github.com/grovetools/jobslots/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the jobslots command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand("jobslots", "Administer job slots per department")
	root.Long = `Administer job slots per department.

Jobs from the console state are grouped under their primary department,
ordered by the configured department ranking, and can be filtered by name.`

	root.Version = version.GetInfo().Short()

	profiler := profiling.NewCobraProfiler()
	profiler.AddFlags(root)
	root.PersistentPreRunE = profiler.PreRun
	root.PersistentPostRun = profiler.PostRun

	root.AddCommand(
		NewPanelCmd(),
		NewListCmd(),
		NewAdjustCmd(),
		NewSchemaCmd(),
		cli.NewVersionCommand("jobslots"),
	)
	return root
}
