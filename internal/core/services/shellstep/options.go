package shellstep

import (
	"github.com/AntonioJCosta/stepshell/internal/core/domain/verbosity"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
)

// AssembleFunc builds the command line of a step. It must be free of side
// effects; it is called at most once per step.
type AssembleFunc func(ec *ports.ExecutionContext) []string

// EnvironmentFunc returns the variables a step adds on top of the context
// environment.
type EnvironmentFunc func(ec *ports.ExecutionContext) map[string]string

// StdinFunc returns the payload to write to the child's stdin, if any.
type StdinFunc func() (string, bool)

// PrintPolicy decides whether captured output is echoed at a verbosity.
type PrintPolicy func(v verbosity.Level) bool

// Option customizes a ShellStep at construction.
type Option func(*ShellStep)

// WithWorkingDirectory runs the command in dir instead of the project root.
func WithWorkingDirectory(dir string) Option {
	return func(s *ShellStep) {
		s.workingDir = dir
		s.hasWorkingDir = true
	}
}

// WithEnvironment sets the step's environment overrides.
func WithEnvironment(f EnvironmentFunc) Option {
	return func(s *ShellStep) { s.environment = f }
}

// WithStaticEnvironment sets fixed environment overrides.
func WithStaticEnvironment(env map[string]string) Option {
	copied := make(map[string]string, len(env))
	for k, v := range env {
		copied[k] = v
	}
	return WithEnvironment(func(*ports.ExecutionContext) map[string]string { return copied })
}

// WithStdin pipes a fixed payload to the child's stdin.
func WithStdin(payload string) Option {
	return func(s *ShellStep) {
		s.stdin = func() (string, bool) { return payload, true }
	}
}

// WithPrintStdout overrides when captured stdout is echoed. By default it never is.
func WithPrintStdout(p PrintPolicy) Option {
	return func(s *ShellStep) { s.printStdout = p }
}

// WithPrintStderr overrides when captured stderr is echoed. By default it is
// echoed at standard verbosity and above.
func WithPrintStderr(p PrintPolicy) Option {
	return func(s *ShellStep) { s.printStderr = p }
}

// WithFlushProgressLive streams stdout and stderr straight to the console
// as they are produced instead of buffering them. Live streams cannot be
// read back with Stdout or Stderr.
func WithFlushProgressLive(live bool) Option {
	return func(s *ShellStep) { s.flushLive = live }
}

// Always is a PrintPolicy that echoes at every verbosity.
func Always(verbosity.Level) bool { return true }

// Never is a PrintPolicy that never echoes.
func Never(verbosity.Level) bool { return false }
