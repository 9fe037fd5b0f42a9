package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/stepdef"
	"github.com/AntonioJCosta/stepshell/internal/core/services/stepplan"
	"github.com/AntonioJCosta/stepshell/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(g *globalFlags, deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list FILE",
		Short: "List the steps declared in a step file.",
		Long:  `Validates a step file and displays its steps in order, without running anything.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, g, deps)
		},
	}
	return cmd
}

func runListCmd(_ *cobra.Command, args []string, g *globalFlags, deps Dependencies) error {
	ec, c, err := newExecutionContext(g, deps)
	if err != nil {
		return err
	}

	provider, err := deps.NewStepFileProvider(args[0])
	if err != nil {
		return fmt.Errorf("could not open step file: %w", err)
	}
	defs, err := provider.GetDefinitions()
	if err != nil {
		return fmt.Errorf("could not list steps: %w", err)
	}
	steps, err := stepplan.Build(defs, ec.ProjectRoot)
	if err != nil {
		return fmt.Errorf("%s: %w", provider.Source(), err)
	}

	if len(steps) == 0 {
		fmt.Fprintln(c.Stdout(), ui.InfoColor(fmt.Sprintf("No steps found in %s.", provider.Source())))
		return nil
	}

	fmt.Fprintln(c.Stdout(), ui.HeaderColor(fmt.Sprintf("Steps in %s:", provider.Source())))

	table := tablewriter.NewWriter(c.Stdout())
	table.SetHeader([]string{"#", "Name", "Kind", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, step := range steps {
		table.Append([]string{
			strconv.Itoa(i + 1),
			step.ShortName(),
			kindOf(defs[i]),
			step.Description(ec),
		})
	}
	table.Render()
	return nil
}

func kindOf(def stepdef.Definition) string {
	kinds := def.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ",")
}
