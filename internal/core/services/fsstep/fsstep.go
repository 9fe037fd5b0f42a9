/*
Package fsstep provides the filesystem steps that usually accompany shell
steps in a build: creating an output directory and writing a generated file
before a tool reads it.
*/
package fsstep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/stepshell/internal/core/ports"
	"github.com/alessio/shellescape"
)

// resolve joins relative paths onto the project root.
func resolve(ec *ports.ExecutionContext, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ec.ProjectRoot, path)
}

func fail(ec *ports.ExecutionContext, name string, err error) int {
	if ec.Stderr != nil {
		fmt.Fprintf(ec.Stderr, "%s: %v\n", name, err)
	}
	return 1
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// MkdirStep creates a directory and any missing parents.
type MkdirStep struct {
	name string
	path string
}

var _ ports.Step = (*MkdirStep)(nil)

// NewMkdirStep creates a step named name, or "mkdir" when name is empty.
func NewMkdirStep(name, path string) *MkdirStep {
	return &MkdirStep{name: nameOr(name, "mkdir"), path: path}
}

func (s *MkdirStep) ShortName() string { return s.name }

func (s *MkdirStep) Description(*ports.ExecutionContext) string {
	return "mkdir -p " + shellescape.Quote(s.path)
}

func (s *MkdirStep) Execute(_ context.Context, ec *ports.ExecutionContext) int {
	if err := os.MkdirAll(resolve(ec, s.path), 0o755); err != nil {
		return fail(ec, s.ShortName(), fmt.Errorf("creating directory %s: %w", s.path, err))
	}
	return 0
}

// ContentFunc supplies the content of a file at execution time.
type ContentFunc func() string

// WriteFileStep writes content to a file, replacing it if it exists.
type WriteFileStep struct {
	name    string
	path    string
	content ContentFunc
}

var _ ports.Step = (*WriteFileStep)(nil)

// NewWriteFileStep creates a step that writes the result of content to path.
// The step is named name, or "write_file" when name is empty. It panics if
// content is nil.
func NewWriteFileStep(name, path string, content ContentFunc) *WriteFileStep {
	if content == nil {
		panic("fsstep: content func cannot be nil")
	}
	return &WriteFileStep{name: nameOr(name, "write_file"), path: path, content: content}
}

func (s *WriteFileStep) ShortName() string { return s.name }

// Description renders a printf that writes the same bytes. content must be
// free of side effects since it is evaluated here too.
func (s *WriteFileStep) Description(*ports.ExecutionContext) string {
	return fmt.Sprintf("printf %%s %s > %s", shellescape.Quote(s.content()), shellescape.Quote(s.path))
}

func (s *WriteFileStep) Execute(_ context.Context, ec *ports.ExecutionContext) int {
	if err := os.WriteFile(resolve(ec, s.path), []byte(s.content()), 0o644); err != nil {
		return fail(ec, s.ShortName(), fmt.Errorf("writing %s: %w", s.path, err))
	}
	return 0
}
