/*
Package stepplan turns step definitions into runnable steps.
*/
package stepplan

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/stepdef"
	"github.com/AntonioJCosta/stepshell/internal/core/domain/verbosity"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
	"github.com/AntonioJCosta/stepshell/internal/core/services/fsstep"
	"github.com/AntonioJCosta/stepshell/internal/core/services/shellstep"
	"github.com/google/shlex"
)

// Service loads step definitions from a provider and builds steps from them.
type Service struct {
	provider ports.StepFileProvider
}

// NewService creates a new step plan service.
// It panics if the provider is nil.
func NewService(p ports.StepFileProvider) *Service {
	if p == nil {
		panic("step file provider cannot be nil")
	}
	return &Service{provider: p}
}

// Plan loads the definitions and builds one step per definition.
func (s *Service) Plan(projectRoot string) ([]ports.Step, error) {
	defs, err := s.provider.GetDefinitions()
	if err != nil {
		return nil, fmt.Errorf("failed to load steps: %w", err)
	}
	steps, err := Build(defs, projectRoot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.provider.Source(), err)
	}
	return steps, nil
}

// Source identifies where the plan's definitions come from.
func (s *Service) Source() string {
	return s.provider.Source()
}

// Build creates the steps for defs. Relative working directories are
// resolved against projectRoot.
func Build(defs []stepdef.Definition, projectRoot string) ([]ports.Step, error) {
	steps := make([]ports.Step, 0, len(defs))
	for i, def := range defs {
		step, err := buildOne(def, projectRoot)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func buildOne(def stepdef.Definition, projectRoot string) (ports.Step, error) {
	switch {
	case def.Mkdir != "":
		return fsstep.NewMkdirStep(def.Name, def.Mkdir), nil
	case def.Write != nil:
		content := def.Write.Content
		return fsstep.NewWriteFileStep(def.Name, def.Write.Path, func() string { return content }), nil
	default:
		step, err := buildShellStep(def, projectRoot)
		if err != nil {
			return nil, err
		}
		return step, nil
	}
}

func buildShellStep(def stepdef.Definition, projectRoot string) (*shellstep.ShellStep, error) {
	command := def.Command
	if def.Run != "" {
		argv, err := shlex.Split(def.Run)
		if err != nil {
			return nil, fmt.Errorf("splitting run %q: %w", def.Run, err)
		}
		command = argv
	}
	if len(command) == 0 {
		return nil, fmt.Errorf("command produced empty argv")
	}

	name := def.Name
	if name == "" {
		name = filepath.Base(command[0])
	}

	opts := []shellstep.Option{
		shellstep.WithFlushProgressLive(def.Live),
	}
	if len(def.Env) > 0 {
		opts = append(opts, shellstep.WithStaticEnvironment(def.Env))
	}
	if def.Dir != "" {
		dir := def.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(projectRoot, dir)
		}
		opts = append(opts, shellstep.WithWorkingDirectory(dir))
	}
	if def.Stdin != nil {
		opts = append(opts, shellstep.WithStdin(*def.Stdin))
	}
	if def.PrintStdout {
		opts = append(opts, shellstep.WithPrintStdout(verbosity.Level.ShouldPrintBinaryRunInformation))
	}
	if def.PrintStderr != nil {
		if *def.PrintStderr {
			opts = append(opts, shellstep.WithPrintStderr(verbosity.Level.ShouldPrintBinaryRunInformation))
		} else {
			opts = append(opts, shellstep.WithPrintStderr(shellstep.Never))
		}
	}

	if def.VerboseFlag == "" {
		return shellstep.NewStatic(name, command, opts...), nil
	}
	flag := def.VerboseFlag
	return shellstep.New(name, func(ec *ports.ExecutionContext) []string {
		args := slices.Clone(command)
		if ec.Verbosity.ShouldUseVerbosityFlagIfAvailable() {
			args = append(args, flag)
		}
		return args
	}, opts...), nil
}
