package testutil

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/process"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
)

// ErrMockWait is a ready-made wait failure for tests.
var ErrMockWait = errors.New("MockProcess: wait interrupted")

// MockProcessExecutor is a mock implementation of ports.ProcessExecutor.
type MockProcessExecutor struct {
	LaunchFunc  func(spec process.Spec) (ports.Process, error)
	ExecuteFunc func(ctx context.Context, proc ports.Process, opts process.Option, stdin io.Reader) process.Result

	// Recorded arguments of the last calls.
	LaunchedSpecs []process.Spec
	ExecutedOpts  []process.Option
	ExecutedStdin []string
}

// Launch records spec and calls the mock LaunchFunc. Without one it returns
// a fresh MockProcess.
func (m *MockProcessExecutor) Launch(spec process.Spec) (ports.Process, error) {
	m.LaunchedSpecs = append(m.LaunchedSpecs, spec)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(spec)
	}
	return &MockProcess{}, nil
}

// Execute records opts and the stdin payload and calls the mock ExecuteFunc.
func (m *MockProcessExecutor) Execute(ctx context.Context, proc ports.Process, opts process.Option, stdin io.Reader) process.Result {
	m.ExecutedOpts = append(m.ExecutedOpts, opts)
	if stdin != nil {
		data, _ := io.ReadAll(stdin)
		m.ExecutedStdin = append(m.ExecutedStdin, string(data))
		stdin = strings.NewReader(string(data))
	}
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, proc, opts, stdin)
	}
	return process.Result{ExitCode: 0, Stdout: process.Captured(""), Stderr: process.Captured("")}
}

// MockProcess is a mock implementation of ports.Process.
type MockProcess struct {
	StdinWriter  io.WriteCloser
	StdoutReader io.ReadCloser
	StderrReader io.ReadCloser
	WaitFunc     func() (int, error)
	KillFunc     func()

	mu           sync.Mutex
	WaitCalls    int
	KillCalls    int
	DestroyCalls int
}

func (m *MockProcess) Stdin() io.WriteCloser { return m.StdinWriter }

func (m *MockProcess) Stdout() io.ReadCloser {
	if m.StdoutReader == nil {
		return io.NopCloser(eofReader{})
	}
	return m.StdoutReader
}

func (m *MockProcess) Stderr() io.ReadCloser {
	if m.StderrReader == nil {
		return io.NopCloser(eofReader{})
	}
	return m.StderrReader
}

// Wait calls the mock WaitFunc, or reports a clean exit.
func (m *MockProcess) Wait() (int, error) {
	m.mu.Lock()
	m.WaitCalls++
	m.mu.Unlock()
	if m.WaitFunc != nil {
		return m.WaitFunc()
	}
	return 0, nil
}

// Kill counts the call and runs the mock KillFunc, if any.
func (m *MockProcess) Kill() {
	m.mu.Lock()
	m.KillCalls++
	m.mu.Unlock()
	if m.KillFunc != nil {
		m.KillFunc()
	}
}

func (m *MockProcess) Destroy() {
	m.mu.Lock()
	m.DestroyCalls++
	m.mu.Unlock()
	_, _ = m.Wait()
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
