package cli

import (
	"fmt"

	"github.com/AntonioJCosta/stepshell/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the 'describe' subcommand.
func NewDescribeCommand(g *globalFlags, deps Dependencies) *cobra.Command {
	f := &sourceFlags{}

	cmd := &cobra.Command{
		Use:   "describe [flags] [-- command [args...]]",
		Short: "Print the shell commands a run would execute, without running them.",
		Long: `Prints each step as a POSIX shell command line: environment overrides, the
command itself and, when the step has its own working directory, a cd into it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribeCmd(cmd, args, g, f, deps)
		},
	}
	addSourceFlags(cmd, f)
	return cmd
}

func runDescribeCmd(cmd *cobra.Command, args []string, g *globalFlags, f *sourceFlags, deps Dependencies) error {
	ec, c, err := newExecutionContext(g, deps)
	if err != nil {
		return err
	}
	steps, err := loadSteps(cmd, f, deps, ec.ProjectRoot, args)
	if err != nil {
		return err
	}

	for _, step := range steps {
		fmt.Fprintln(c.Stdout(), ui.DetailColor("# "+step.ShortName()))
		fmt.Fprintln(c.Stdout(), ui.CommandColor(step.Description(ec)))
	}
	return nil
}
