//go:build !windows

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/stepshell/internal/adapters/oscommand"
	"github.com/AntonioJCosta/stepshell/internal/adapters/stepfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand("test", Dependencies{
		Stdout:              &stdout,
		Stderr:              &stderr,
		NewExecutor:         oscommand.NewOSProcessExecutor,
		NewStepFileProvider: stepfile.NewYAMLProvider,
		Environ:             func() []string { return []string{"PATH=" + os.Getenv("PATH")} },
	})
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.ExecuteContext(context.Background())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeStepFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCommand_PanicsWithoutAdapters(t *testing.T) {
	assert.Panics(t, func() { NewRootCommand("test", Dependencies{}) })
}

func TestRunCommand(t *testing.T) {
	t.Run("single command succeeds", func(t *testing.T) {
		res := runCLI(t, "run", "--print-stdout", "--", "/bin/sh", "-c", "printf hello")

		require.NoError(t, res.err)
		assert.Contains(t, res.stderr, "hello")
	})

	t.Run("single command failure carries the exit code", func(t *testing.T) {
		res := runCLI(t, "run", "--", "/bin/sh", "-c", "printf oops >&2; exit 3")

		var exitErr *ExitError
		require.True(t, errors.As(res.err, &exitErr), "got %v", res.err)
		assert.Equal(t, 3, exitErr.Code)
		assert.Contains(t, res.stderr, "oops")
		assert.Contains(t, res.stderr, "Build failed with exit code 3.")
	})

	t.Run("silent failure prints nothing", func(t *testing.T) {
		res := runCLI(t, "--verbosity", "silent", "run", "--", "/bin/sh", "-c", "printf oops >&2; exit 3")

		var exitErr *ExitError
		require.True(t, errors.As(res.err, &exitErr))
		assert.Empty(t, res.stderr)
		assert.Empty(t, res.stdout)
	})

	t.Run("environment flags reach the child", func(t *testing.T) {
		res := runCLI(t, "--env", "A=1", "run", "--step-env", "B=2", "--print-stdout",
			"--run", `/bin/sh -c 'printf "%s%s" "$A" "$B"'`)

		require.NoError(t, res.err)
		assert.Contains(t, res.stderr, "12")
	})

	t.Run("step file runs in order and prints a summary", func(t *testing.T) {
		dir := t.TempDir()
		path := writeStepFile(t, dir, `
steps:
  - name: outdir
    mkdir: out
  - name: manifest
    write:
      path: out/manifest.txt
      content: "hello"
  - name: check
    command: ["/bin/sh", "-c", "test -f out/manifest.txt"]
`)

		res := runCLI(t, "--project-root", dir, "run", "-f", path)

		require.NoError(t, res.err)
		data, err := os.ReadFile(filepath.Join(dir, "out", "manifest.txt"))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
		assert.Contains(t, res.stdout, "Build summary:")
		assert.Contains(t, res.stdout, "outdir")
		assert.Contains(t, res.stdout, "manifest")
		assert.Contains(t, res.stdout, "passed")
		assert.Contains(t, res.stdout, "Build succeeded")
	})

	t.Run("step file stops at the first failure", func(t *testing.T) {
		dir := t.TempDir()
		path := writeStepFile(t, dir, `
steps:
  - name: fail
    run: /bin/sh -c 'exit 4'
  - name: never
    mkdir: never
`)

		res := runCLI(t, "--project-root", dir, "run", "-f", path)

		var exitErr *ExitError
		require.True(t, errors.As(res.err, &exitErr))
		assert.Equal(t, 4, exitErr.Code)
		assert.Contains(t, res.stdout, "skipped")
		assert.NoDirExists(t, filepath.Join(dir, "never"))
	})

	t.Run("nothing to run", func(t *testing.T) {
		res := runCLI(t, "run")
		assert.ErrorIs(t, res.err, ErrNoSteps)
	})

	t.Run("file and command together", func(t *testing.T) {
		res := runCLI(t, "run", "-f", "steps.yaml", "--run", "true")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "--file cannot be combined")
	})

	t.Run("run and args together", func(t *testing.T) {
		res := runCLI(t, "run", "--run", "true", "--", "true")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "mutually exclusive")
	})

	t.Run("unknown verbosity", func(t *testing.T) {
		res := runCLI(t, "--verbosity", "loud", "run", "--run", "true")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "unknown verbosity")
	})
}

func TestDescribeCommand(t *testing.T) {
	res := runCLI(t, "describe", "--name", "greet", "--dir", "/tmp", "--step-env", "X=1", "--", "echo", "hi there")

	require.NoError(t, res.err)
	assert.Equal(t, "# greet\n(cd /tmp && X=1 echo 'hi there')\n", res.stdout)
}

func TestDescribeCommand_VerboseFlag(t *testing.T) {
	res := runCLI(t, "--verbosity", "output", "describe", "--verbose-flag=-v", "--run", "aapt package")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "aapt package -v\n")
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()

	t.Run("lists steps", func(t *testing.T) {
		path := writeStepFile(t, dir, `
steps:
  - mkdir: out
  - name: greet
    run: echo hi
`)
		res := runCLI(t, "--project-root", dir, "list", path)

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Steps in "+path)
		assert.Contains(t, res.stdout, "mkdir -p out")
		assert.Contains(t, res.stdout, "greet")
		assert.Contains(t, res.stdout, "shell")
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeStepFile(t, dir, "steps: []\n")
		res := runCLI(t, "list", path)

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "No steps found")
	})

	t.Run("invalid file", func(t *testing.T) {
		path := writeStepFile(t, dir, "steps:\n  - name: lonely\n")
		res := runCLI(t, "list", path)

		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "one of run, command, mkdir or write is required")
	})

	t.Run("requires a file", func(t *testing.T) {
		res := runCLI(t, "list")
		require.Error(t, res.err)
	})
}
