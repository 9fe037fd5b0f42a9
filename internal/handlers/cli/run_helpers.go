package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AntonioJCosta/stepshell/internal/adapters/console"
	"github.com/AntonioJCosta/stepshell/internal/adapters/logging"
	"github.com/AntonioJCosta/stepshell/internal/core/domain/stepdef"
	"github.com/AntonioJCosta/stepshell/internal/core/domain/verbosity"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
	"github.com/AntonioJCosta/stepshell/internal/core/services/stepplan"
	"github.com/AntonioJCosta/stepshell/internal/core/services/steprunner"
	"github.com/AntonioJCosta/stepshell/internal/handlers/ui"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// sourceFlags select where the steps of a run or describe come from.
type sourceFlags struct {
	file        string
	run         string
	name        string
	dir         string
	stdin       string
	live        bool
	printStdout bool
	verboseFlag string
	stepEnv     map[string]string
}

func addSourceFlags(cmd *cobra.Command, f *sourceFlags) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Step file to load.")
	cmd.Flags().StringVar(&f.run, "run", "", "Command line of a single step, split with shell word rules.")
	cmd.Flags().StringVar(&f.name, "name", "", "Short name of a single step (default the program name).")
	cmd.Flags().StringVar(&f.dir, "dir", "", "Working directory of a single step.")
	cmd.Flags().StringVar(&f.stdin, "stdin", "", "Text piped to a single step's standard input.")
	cmd.Flags().BoolVar(&f.live, "live", false, "Stream a single step's output instead of capturing it.")
	cmd.Flags().BoolVar(&f.printStdout, "print-stdout", false, "Show a single step's captured stdout.")
	cmd.Flags().StringVar(&f.verboseFlag, "verbose-flag", "", "Flag appended to a single step's command at output verbosity and above.")
	cmd.Flags().StringToStringVar(&f.stepEnv, "step-env", nil, "Environment override of a single step KEY=VALUE (repeatable).")
}

// definitionFromFlags describes the single step given by --run or by the
// arguments after "--".
func definitionFromFlags(cmd *cobra.Command, f *sourceFlags, args []string) (stepdef.Definition, error) {
	if f.run != "" && len(args) > 0 {
		return stepdef.Definition{}, errors.New("--run and a command after -- are mutually exclusive")
	}
	def := stepdef.Definition{
		Name:        f.name,
		Run:         f.run,
		Command:     args,
		Env:         f.stepEnv,
		Dir:         f.dir,
		Live:        f.live,
		PrintStdout: f.printStdout,
		VerboseFlag: f.verboseFlag,
	}
	if cmd.Flags().Changed("stdin") {
		payload := f.stdin
		def.Stdin = &payload
	}
	return def, nil
}

// loadSteps builds the steps of a command invocation from a step file or
// from the single-step flags.
func loadSteps(cmd *cobra.Command, f *sourceFlags, deps Dependencies, projectRoot string, args []string) ([]ports.Step, error) {
	if f.file != "" {
		if f.run != "" || len(args) > 0 {
			return nil, errors.New("--file cannot be combined with --run or a command")
		}
		provider, err := deps.NewStepFileProvider(f.file)
		if err != nil {
			return nil, fmt.Errorf("could not open step file: %w", err)
		}
		return stepplan.NewService(provider).Plan(projectRoot)
	}
	if f.run == "" && len(args) == 0 {
		return nil, ErrNoSteps
	}
	def, err := definitionFromFlags(cmd, f, args)
	if err != nil {
		return nil, err
	}
	return stepplan.Build([]stepdef.Definition{def}, projectRoot)
}

// newExecutionContext assembles the context steps run in from the global flags.
func newExecutionContext(g *globalFlags, deps Dependencies) (*ports.ExecutionContext, *console.Console, error) {
	level, err := verbosity.Parse(g.verbosity)
	if err != nil {
		return nil, nil, err
	}

	root := g.projectRoot
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return nil, nil, fmt.Errorf("could not determine the project root: %w", err)
		}
	}
	if root, err = filepath.Abs(root); err != nil {
		return nil, nil, fmt.Errorf("could not resolve the project root: %w", err)
	}

	env := make(map[string]string)
	if g.inheritEnv {
		env = environToMap(deps.Environ())
	}
	for k, v := range g.env {
		env[k] = v
	}

	c := console.New(deps.Stdout, deps.Stderr, detectAnsi(deps.Stdout, g.noColor))
	buildID := uuid.NewString()

	ec := &ports.ExecutionContext{
		Environment: env,
		ProjectRoot: root,
		Verbosity:   level,
		Events:      c,
		Stderr:      c.Stderr(),
		Executor:    deps.NewExecutor(c),
		BuildID:     buildID,
		Logger:      logging.New(c.Stderr(), level, buildID, c.Ansi().Enabled()),
	}
	return ec, c, nil
}

func detectAnsi(w io.Writer, noColor bool) *console.Ansi {
	if f, ok := w.(*os.File); ok {
		return console.DetectAnsi(f, noColor)
	}
	return console.NewAnsi(false)
}

// environToMap converts KEY=VALUE entries to a map. Entries without '=' are
// dropped; on Windows the hidden "=C:" style entries are dropped too.
func environToMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

func printSummary(w io.Writer, report steprunner.Report) {
	fmt.Fprintln(w, ui.HeaderColor("Build summary:"))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "Status", "Exit Code", "Duration"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, o := range report.Outcomes {
		exit, took := "-", "-"
		if o.Status != steprunner.StatusSkipped {
			exit = fmt.Sprintf("%d", o.ExitCode)
			took = o.Duration.Round(time.Millisecond).String()
		}
		table.Append([]string{ui.StepNameColor(o.ShortName), ui.StatusColor(string(o.Status)), exit, ui.DetailColor(took)})
	}
	table.Render()
}
