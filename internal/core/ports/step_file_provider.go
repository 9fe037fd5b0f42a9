package ports

import "github.com/AntonioJCosta/stepshell/internal/core/domain/stepdef"

// StepFileProvider defines the interface for sourcing step definitions
// from a step file.
type StepFileProvider interface {
	GetDefinitions() ([]stepdef.Definition, error)
	// Source identifies where the definitions came from, for messages.
	Source() string
}
