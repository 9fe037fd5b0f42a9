package oscommand

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/stepshell/internal/adapters/console"
	"github.com/AntonioJCosta/stepshell/internal/core/domain/process"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var errNoStdinPipe = errors.New("process was launched without a stdin pipe")

// OSProcessExecutor implements the ProcessExecutor interface with native
// processes. It keeps no per-call state and is safe for concurrent use.
type OSProcessExecutor struct {
	console *console.Console
}

// NewOSProcessExecutor creates an executor that forwards output to the
// console's real sinks. It panics if the console is nil.
func NewOSProcessExecutor(c *console.Console) ports.ProcessExecutor {
	if c == nil {
		panic("console cannot be nil")
	}
	return &OSProcessExecutor{console: c}
}

// Launch starts the process described by spec.
func (e *OSProcessExecutor) Launch(spec process.Spec) (ports.Process, error) {
	p, err := launch(spec)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Execute drives proc to completion.
//
// Both streams are drained concurrently before stdin is written or the
// process is waited on, and the drainers are joined only after termination
// is observed. A child blocked on a full pipe can therefore always make
// progress. The drainers are joined on every path, so nothing reaches the
// console sinks after Execute returns. A descendant that leaves the process
// group while holding a pipe open delays Execute until it exits.
func (e *OSProcessExecutor) Execute(ctx context.Context, proc ports.Process, opts process.Option, stdin io.Reader) process.Result {
	defer proc.Destroy()

	stdout := newStreamDrainer("stdout", proc.Stdout(), e.liveSink(opts, process.StreamStdoutLive, e.console.Stdout()), e.console.Ansi())
	stderr := newStreamDrainer("stderr", proc.Stderr(), e.liveSink(opts, process.StreamStderrLive, e.console.Stderr()), e.console.Ansi())

	var drains errgroup.Group
	drains.Go(killOnError(proc, stdout.Drain))
	drains.Go(killOnError(proc, stderr.Drain))

	// Cancelling ctx kills the process group, which unblocks the stdin
	// write, the wait and drainers held open by background descendants.
	stop := context.AfterFunc(ctx, proc.Kill)

	if stdin != nil {
		if err := writeStdin(proc.Stdin(), stdin); err != nil {
			stop()
			proc.Kill()
			_ = drains.Wait()
			return process.Interrupted()
		}
	}

	exitCode, waitErr := proc.Wait()
	if waitErr != nil {
		proc.Kill()
	}
	drainErr := drains.Wait()
	if !stop() || waitErr != nil || drainErr != nil {
		return process.Interrupted()
	}

	result := process.Result{ExitCode: exitCode}
	if !stdout.Live() {
		result.Stdout = process.Captured(stdout.Text())
	}
	if !stderr.Live() {
		result.Stderr = process.Captured(stderr.Text())
	}

	// Failures are always visible unless silenced.
	if exitCode != 0 && !opts.Has(process.Silent) {
		if text, ok := result.Stdout.Get(); ok {
			_, _ = io.WriteString(e.console.Stdout(), text)
		}
		if text, ok := result.Stderr.Get(); ok {
			_, _ = io.WriteString(e.console.Stderr(), text)
		}
	}

	return result
}

func (e *OSProcessExecutor) liveSink(opts, flag process.Option, sink io.Writer) io.Writer {
	if opts.Has(flag) {
		return sink
	}
	return nil
}

// killOnError kills proc when drain fails. A child writing to a stream
// nobody reads anymore would otherwise block forever.
func killOnError(proc ports.Process, drain func() error) func() error {
	return func() error {
		err := drain()
		if err != nil {
			proc.Kill()
		}
		return err
	}
}

func writeStdin(w io.WriteCloser, r io.Reader) error {
	if w == nil {
		return errNoStdinPipe
	}
	_, err := io.Copy(w, r)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing stdin: %w", err)
	}
	return nil
}
