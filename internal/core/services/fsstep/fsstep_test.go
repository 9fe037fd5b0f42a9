package fsstep

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/AntonioJCosta/stepshell/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdirStep(t *testing.T) {
	root := t.TempDir()
	ec := &ports.ExecutionContext{ProjectRoot: root}

	step := NewMkdirStep("", "out/gen dir")

	assert.Equal(t, "mkdir", step.ShortName())
	assert.Equal(t, "mkdir -p 'out/gen dir'", step.Description(ec))
	require.Equal(t, 0, step.Execute(context.Background(), ec))

	info, err := os.Stat(filepath.Join(root, "out", "gen dir"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMkdirStep_FailureReportsToStderr(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var stderr bytes.Buffer
	ec := &ports.ExecutionContext{ProjectRoot: root, Stderr: &stderr}

	code := NewMkdirStep("", "file/sub").Execute(context.Background(), ec)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "mkdir: creating directory file/sub")
}

func TestWriteFileStep(t *testing.T) {
	root := t.TempDir()
	ec := &ports.ExecutionContext{ProjectRoot: root}

	step := NewWriteFileStep("", "AndroidManifest.xml", func() string {
		return "<manifest package='com.example' />"
	})

	assert.Equal(t, "write_file", step.ShortName())
	assert.Equal(t, `printf %s '<manifest package='"'"'com.example'"'"' />' > AndroidManifest.xml`, step.Description(ec))
	require.Equal(t, 0, step.Execute(context.Background(), ec))

	data, err := os.ReadFile(filepath.Join(root, "AndroidManifest.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<manifest package='com.example' />", string(data))
}

func TestNewWriteFileStep_PanicsOnNilContent(t *testing.T) {
	assert.Panics(t, func() { NewWriteFileStep("", "x", nil) })
}

func TestFileSteps_Names(t *testing.T) {
	tests := []struct {
		name string
		step ports.Step
		want string
	}{
		{name: "mkdir default", step: NewMkdirStep("", "out"), want: "mkdir"},
		{name: "mkdir named", step: NewMkdirStep("outdir", "out"), want: "outdir"},
		{name: "write default", step: NewWriteFileStep("", "f", func() string { return "" }), want: "write_file"},
		{name: "write named", step: NewWriteFileStep("manifest", "f", func() string { return "" }), want: "manifest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.step.ShortName())
		})
	}
}

func TestWriteFileStep_DescriptionReproducesTheFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	root := t.TempDir()
	ec := &ports.ExecutionContext{ProjectRoot: root}
	content := "line one\n100% it's \"quoted\" $HOME `x`\n"
	step := NewWriteFileStep("", "out file.txt", func() string { return content })

	cmd := exec.Command("/bin/sh", "-c", step.Description(ec))
	cmd.Dir = root
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(filepath.Join(root, "out file.txt"))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
