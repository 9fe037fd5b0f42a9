package oscommand

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/process"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
)

// ErrEmptyCommand is returned when a launch spec has no program.
var ErrEmptyCommand = errors.New("command is empty")

// osProcess is a child process whose pipes are plain OS pipes owned by the
// parent. exec.Cmd is never given an io.Reader or io.Writer, so Wait does not
// close the read ends under the drainers.
type osProcess struct {
	cmd    *exec.Cmd
	stdin  *os.File
	stdout *os.File
	stderr *os.File

	waitOnce sync.Once
	exitCode int
	waitErr  error

	mu     sync.Mutex
	reaped bool
}

var _ ports.Process = (*osProcess)(nil)

func launch(spec process.Spec) (*osProcess, error) {
	if len(spec.Command) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.Command(spec.Command[0], spec.Command[1:]...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	if cmd.Env == nil {
		// A nil Env would make the child inherit our environment.
		cmd.Env = []string{}
	}
	cmd.SysProcAttr = sysProcAttr()

	var parentEnds, childEnds []*os.File
	cleanup := func() {
		closeAll(parentEnds)
		closeAll(childEnds)
	}

	outR, outW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	parentEnds, childEnds = append(parentEnds, outR), append(childEnds, outW)

	errR, errW, err := os.Pipe()
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("creating stderr pipe: %w", err)
	}
	parentEnds, childEnds = append(parentEnds, errR), append(childEnds, errW)

	cmd.Stdout = outW
	cmd.Stderr = errW

	var inW *os.File
	if spec.PipeStdin {
		var inR *os.File
		inR, inW, err = os.Pipe()
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("creating stdin pipe: %w", err)
		}
		parentEnds, childEnds = append(parentEnds, inW), append(childEnds, inR)
		cmd.Stdin = inR
	}

	if err := cmd.Start(); err != nil {
		cleanup()
		return nil, fmt.Errorf("starting %s: %w", spec.Command[0], err)
	}
	// The child holds its own copies now; keeping ours open would stop the
	// drainers from ever seeing end-of-stream.
	closeAll(childEnds)

	return &osProcess{
		cmd:    cmd,
		stdin:  inW,
		stdout: outR,
		stderr: errR,
	}, nil
}

func (p *osProcess) Stdin() io.WriteCloser {
	if p.stdin == nil {
		return nil
	}
	return p.stdin
}

func (p *osProcess) Stdout() io.ReadCloser { return p.stdout }

func (p *osProcess) Stderr() io.ReadCloser { return p.stderr }

func (p *osProcess) Wait() (int, error) {
	p.waitOnce.Do(func() {
		err := p.cmd.Wait()

		p.mu.Lock()
		p.reaped = true
		p.mu.Unlock()

		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			p.exitCode, p.waitErr = 1, fmt.Errorf("waiting for %s: %w", p.cmd.Path, err)
			return
		}
		p.exitCode = exitCode(p.cmd.ProcessState)
	})
	return p.exitCode, p.waitErr
}

func (p *osProcess) Kill() {
	_ = killTree(p.cmd.Process)
}

func (p *osProcess) Destroy() {
	p.mu.Lock()
	if !p.reaped {
		_ = killTree(p.cmd.Process)
	}
	p.mu.Unlock()

	_, _ = p.Wait()
	if p.stdin != nil {
		_ = p.stdin.Close()
	}
}

func closeAll(files []*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
