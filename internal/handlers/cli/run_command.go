package cli

import (
	"fmt"
	"time"

	"github.com/AntonioJCosta/stepshell/internal/core/services/steprunner"
	"github.com/AntonioJCosta/stepshell/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(g *globalFlags, deps Dependencies) *cobra.Command {
	f := &sourceFlags{}

	cmd := &cobra.Command{
		Use:   "run [flags] [-- command [args...]]",
		Short: "Run the steps of a step file, or a single command.",
		Long: `Runs every step of a step file in order and stops at the first failure.
Without --file, runs a single command given by --run or after "--".
The exit code is the exit code of the first failing step.`,
		Example: `  stepshell run -f steps.yaml
  stepshell run --print-stdout -- echo "hello world"
  stepshell run --run "go vet ./..." --dir ./src`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd(cmd, args, g, f, deps)
		},
	}
	addSourceFlags(cmd, f)
	return cmd
}

func runRunCmd(cmd *cobra.Command, args []string, g *globalFlags, f *sourceFlags, deps Dependencies) error {
	ec, c, err := newExecutionContext(g, deps)
	if err != nil {
		return err
	}
	steps, err := loadSteps(cmd, f, deps, ec.ProjectRoot, args)
	if err != nil {
		return err
	}

	ec.Log().WithField("steps", len(steps)).Debug("starting build")
	report := steprunner.Run(cmd.Context(), ec, steps)

	if f.file != "" && ec.Verbosity.ShouldPrintStandardInformation() {
		printSummary(c.Stdout(), report)
	}
	if report.Failed() {
		if ec.Verbosity.ShouldPrintStandardInformation() {
			fmt.Fprintln(c.Stderr(), ui.ErrorColor(fmt.Sprintf("Build failed with exit code %d.", report.ExitCode)))
		}
		return &ExitError{Code: report.ExitCode}
	}
	if f.file != "" && ec.Verbosity.ShouldPrintStandardInformation() {
		fmt.Fprintln(c.Stdout(), ui.SuccessColor(fmt.Sprintf("Build succeeded in %s.", report.Duration.Round(time.Millisecond))))
	}
	return nil
}
