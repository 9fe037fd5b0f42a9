/*
Package shellstep implements build steps backed by a native command.

A ShellStep assembles its command line once, runs it through the context's
process executor in an environment made only of the context environment plus
the step's overrides, and keeps whatever output the executor captured. Its
behaviour is customized with functional options rather than subclassing.
*/
package shellstep

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/event"
	"github.com/AntonioJCosta/stepshell/internal/core/domain/process"
	"github.com/AntonioJCosta/stepshell/internal/core/domain/verbosity"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
	"github.com/alessio/shellescape"
	"github.com/sirupsen/logrus"
)

// ShellStep is single-use: create one per execution. It is not safe for
// concurrent calls to Execute.
type ShellStep struct {
	shortName string
	assemble  AssembleFunc

	workingDir    string
	hasWorkingDir bool

	environment EnvironmentFunc
	stdin       StdinFunc
	printStdout PrintPolicy
	printStderr PrintPolicy
	flushLive   bool

	commandOnce sync.Once
	command     []string

	stdout    process.Output
	stderr    process.Output
	startTime time.Time
	endTime   time.Time
}

var _ ports.Step = (*ShellStep)(nil)

// New creates a ShellStep. It panics if shortName is empty or assemble is nil.
func New(shortName string, assemble AssembleFunc, opts ...Option) *ShellStep {
	if shortName == "" {
		panic("shellstep: short name cannot be empty")
	}
	if assemble == nil {
		panic("shellstep: assemble func cannot be nil")
	}
	s := &ShellStep{
		shortName:   shortName,
		assemble:    assemble,
		environment: func(*ports.ExecutionContext) map[string]string { return nil },
		stdin:       func() (string, bool) { return "", false },
		printStdout: Never,
		printStderr: verbosity.Level.ShouldPrintStandardInformation,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStatic creates a ShellStep whose command line is fixed.
func NewStatic(shortName string, command []string, opts ...Option) *ShellStep {
	args := slices.Clone(command)
	return New(shortName, func(*ports.ExecutionContext) []string { return args }, opts...)
}

func (s *ShellStep) ShortName() string { return s.shortName }

// WorkingDirectory returns the override set at construction, if any.
func (s *ShellStep) WorkingDirectory() (string, bool) {
	return s.workingDir, s.hasWorkingDir
}

// ShellCommand returns the command line. The assemble func runs only on the
// first call; later calls return the same arguments.
func (s *ShellStep) ShellCommand(ec *ports.ExecutionContext) []string {
	s.commandOnce.Do(func() {
		s.command = slices.Clone(s.assemble(ec))
	})
	return slices.Clone(s.command)
}

// EnvironmentOverrides returns the variables the step adds to the context environment.
func (s *ShellStep) EnvironmentOverrides(ec *ports.ExecutionContext) map[string]string {
	return s.environment(ec)
}

func (s *ShellStep) Execute(ctx context.Context, ec *ports.ExecutionContext) int {
	cmd := s.ShellCommand(ec)
	env := s.processEnvironment(ec)
	dir := ec.ProjectRoot
	if s.hasWorkingDir {
		dir = s.workingDir
	}
	payload, hasStdin := s.stdin()

	log := ec.Log().WithFields(logrus.Fields{"step": s.shortName, "dir": dir})
	log.Debugf("running %q", cmd)

	s.startTime = time.Now()
	exitCode := s.run(ctx, ec, process.Spec{
		Command:   cmd,
		Env:       env,
		Dir:       dir,
		PipeStdin: hasStdin,
	}, payload, hasStdin)
	s.endTime = time.Now()

	log.WithField("exit_code", exitCode).Debugf("finished in %s", s.endTime.Sub(s.startTime))
	return exitCode
}

func (s *ShellStep) run(ctx context.Context, ec *ports.ExecutionContext, spec process.Spec, payload string, hasStdin bool) int {
	proc, err := ec.Executor.Launch(spec)
	if err != nil {
		if ec.Stderr != nil {
			fmt.Fprintf(ec.Stderr, "%s: %v\n", s.shortName, err)
		}
		return 1
	}

	var stdin io.Reader
	if hasStdin {
		stdin = strings.NewReader(payload)
	}
	result := ec.Executor.Execute(ctx, proc, s.executorOptions(ec), stdin)
	s.stdout = result.Stdout
	s.stderr = result.Stderr

	if text, ok := s.stdout.Get(); ok && text != "" && s.printStdout(ec.Verbosity) {
		s.post(ec, event.Info("%s", text))
	}
	if text, ok := s.stderr.Get(); ok && text != "" && s.printStderr(ec.Verbosity) {
		s.post(ec, event.Severe("%s", text))
	}
	return result.ExitCode
}

func (s *ShellStep) executorOptions(ec *ports.ExecutionContext) process.Option {
	var opts process.Option
	if s.flushLive {
		opts |= process.StreamStdoutLive | process.StreamStderrLive
	}
	if ec.Verbosity == verbosity.Silent {
		opts |= process.Silent
	}
	return opts
}

func (s *ShellStep) post(ec *ports.ExecutionContext, ev event.Event) {
	if ec.Events != nil {
		ec.Events.Post(ev)
	}
}

// processEnvironment is the context environment with the step's overrides
// on top. Nothing is inherited from the current process.
func (s *ShellStep) processEnvironment(ec *ports.ExecutionContext) []string {
	merged := make(map[string]string, len(ec.Environment))
	maps.Copy(merged, ec.Environment)
	maps.Copy(merged, s.environment(ec))

	env := make([]string, 0, len(merged))
	for _, k := range slices.Sorted(maps.Keys(merged)) {
		env = append(env, k+"="+merged[k])
	}
	return env
}

// Description renders the step as a user would type it in a POSIX shell:
// environment overrides, then the command, each token quoted as needed.
// A working-directory override becomes a subshell that only runs the
// command if the cd succeeded.
func (s *ShellStep) Description(ec *ports.ExecutionContext) string {
	env := s.environment(ec)
	cmd := s.ShellCommand(ec)

	tokens := make([]string, 0, len(env)+len(cmd))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		tokens = append(tokens, k+"="+shellescape.Quote(env[k]))
	}
	for _, arg := range cmd {
		tokens = append(tokens, shellescape.Quote(arg))
	}
	rendered := strings.Join(tokens, " ")

	if !s.hasWorkingDir {
		return rendered
	}
	return fmt.Sprintf("(cd %s && %s)", shellescape.Quote(s.workingDir), rendered)
}

// Duration is the wall time of the last Execute. It panics with a
// *UsageError if the step has not run.
func (s *ShellStep) Duration() time.Duration {
	if s.startTime.IsZero() || s.endTime.IsZero() {
		panic(&UsageError{Step: s.shortName, What: "duration", Reason: ErrNotExecuted})
	}
	return s.endTime.Sub(s.startTime)
}

// Stdout returns the captured stdout. It panics with a *UsageError if the
// step has not run or its stdout was streamed live.
func (s *ShellStep) Stdout() string {
	return s.captured("stdout", s.stdout)
}

// Stderr returns the captured stderr. It panics with a *UsageError if the
// step has not run or its stderr was streamed live.
func (s *ShellStep) Stderr() string {
	return s.captured("stderr", s.stderr)
}

func (s *ShellStep) captured(what string, out process.Output) string {
	if s.endTime.IsZero() {
		panic(&UsageError{Step: s.shortName, What: what, Reason: ErrNotExecuted})
	}
	text, ok := out.Get()
	if !ok {
		panic(&UsageError{Step: s.shortName, What: what, Reason: ErrNotCaptured})
	}
	return text
}
