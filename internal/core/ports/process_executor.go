package ports

import (
	"context"
	"io"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/process"
)

/*
Process is a launched native process. Each stream is owned by exactly one
reader for the lifetime of the process.
*/
type Process interface {
	// Stdin is the write end of the child's stdin pipe, or nil when the
	// process was launched without one.
	Stdin() io.WriteCloser
	Stdout() io.ReadCloser
	Stderr() io.ReadCloser

	// Wait blocks until the process terminates and returns its exit code.
	// An error means termination could not be observed, not that the
	// process failed. Wait may be called more than once.
	Wait() (int, error)

	// Kill forcibly terminates the process and every descendant still in
	// its process group, even after the process itself was reaped. It does
	// not reap and may be called from any goroutine.
	Kill()

	// Destroy forcibly terminates the process if it is still running and
	// reaps it. It is idempotent and safe to call after Wait.
	Destroy()
}

/*
ProcessExecutor spawns native processes and drives them to completion without
deadlocking on full output pipes. Implementations are stateless across calls
and safe for concurrent use.
*/
type ProcessExecutor interface {
	Launch(spec process.Spec) (Process, error)

	// Execute drains the process's stdout and stderr according to opts,
	// writes stdin (if non-nil) and waits for exit. It never returns an
	// error: failures are folded into the result's exit code.
	Execute(ctx context.Context, proc Process, opts process.Option, stdin io.Reader) process.Result
}
