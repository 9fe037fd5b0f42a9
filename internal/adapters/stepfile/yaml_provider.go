package stepfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/stepdef"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the StepFileProvider interface
// by reading step definitions from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML step file.
func NewYAMLProvider(filePath string) (ports.StepFileProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("step file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

func (p *YAMLProvider) Source() string { return p.filePath }

// GetDefinitions reads and parses the step file. Unlike a missing file, an
// empty file is not an error: it simply declares no steps.
func (p *YAMLProvider) GetDefinitions() ([]stepdef.Definition, error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read step file %s: %w", p.filePath, err)
	}
	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse step file %s: %w", p.filePath, err)
	}
	return defs, nil
}

// Parse decodes and validates a step file document.
func Parse(data []byte) ([]stepdef.Definition, error) {
	file := stepdef.File{}
	if len(bytes.TrimSpace(data)) == 0 {
		return []stepdef.Definition{}, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		// A document holding only comments or "---" decodes as EOF.
		if errors.Is(err, io.EOF) {
			return []stepdef.Definition{}, nil
		}
		return nil, err
	}

	if file.Steps == nil {
		file.Steps = []stepdef.Definition{}
	}
	for i, def := range file.Steps {
		if err := validate(def); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, displayName(def), err)
		}
	}
	return file.Steps, nil
}

func validate(def stepdef.Definition) error {
	kinds := def.Kinds()
	switch len(kinds) {
	case 0:
		return errors.New("one of run, command, mkdir or write is required")
	case 1:
	default:
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}
		return fmt.Errorf("declares more than one kind of step: %s", strings.Join(names, ", "))
	}

	if def.Run != "" && len(def.Command) > 0 {
		return errors.New("run and command are mutually exclusive")
	}
	if def.Write != nil && def.Write.Path == "" {
		return errors.New("write.path is required")
	}
	if kinds[0] != stepdef.KindShell && (len(def.Env) > 0 || def.Dir != "" || def.Stdin != nil || def.Live || def.VerboseFlag != "") {
		return fmt.Errorf("env, dir, stdin, live and verbose_flag only apply to command steps")
	}
	return nil
}

func displayName(def stepdef.Definition) string {
	if def.Name != "" {
		return def.Name
	}
	return "unnamed"
}
