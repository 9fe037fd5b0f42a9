package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/stepshell/internal/adapters/console"
	"github.com/AntonioJCosta/stepshell/internal/core/domain/verbosity"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Dependencies are the adapters the commands are wired to.
type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewExecutor builds the process executor writing to a run's console.
	NewExecutor func(c *console.Console) ports.ProcessExecutor
	// NewStepFileProvider opens a step file.
	NewStepFileProvider func(path string) (ports.StepFileProvider, error)
	// Environ seeds the child environment when --inherit-env is set.
	Environ func() []string
}

type globalFlags struct {
	verbosity   string
	projectRoot string
	noColor     bool
	inheritEnv  bool
	env         map[string]string
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	if deps.NewExecutor == nil || deps.NewStepFileProvider == nil {
		panic("cli dependencies must provide an executor and a step file provider")
	}
	if deps.Environ == nil {
		deps.Environ = os.Environ
	}
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "stepshell",
		Short: "stepshell runs build steps as native processes.",
		Long: `stepshell runs build steps backed by shell commands. Each step gets an
environment made only of the build environment plus its own overrides, and
its output is captured or streamed live. Failing commands always show their
output unless the build is silent.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := verbosity.Parse(flags.verbosity); err != nil {
				return err
			}
			if flags.noColor {
				color.NoColor = true
			}
			return nil
		},
	}
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.verbosity, "verbosity", "V", verbosity.StandardInformation.String(),
		fmt.Sprintf("Output verbosity (%s).", strings.Join(verbosity.Names(), ", ")))
	pf.StringVar(&flags.projectRoot, "project-root", "", "Directory commands run in by default (default current directory).")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable coloured output.")
	pf.BoolVar(&flags.inheritEnv, "inherit-env", true, "Seed the build environment from this process's environment.")
	pf.StringToStringVarP(&flags.env, "env", "e", nil, "Build environment variable KEY=VALUE (repeatable).")

	rootCmd.AddCommand(NewRunCommand(flags, deps))
	rootCmd.AddCommand(NewDescribeCommand(flags, deps))
	rootCmd.AddCommand(NewListCommand(flags, deps))

	return rootCmd
}
