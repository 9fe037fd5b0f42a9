package testutil

import (
	"errors"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/stepdef"
)

// MockStepFileProvider is a mock implementation of ports.StepFileProvider.
type MockStepFileProvider struct {
	GetDefinitionsFunc func() ([]stepdef.Definition, error)
	SourceName         string
}

// GetDefinitions calls the mock GetDefinitionsFunc.
func (m *MockStepFileProvider) GetDefinitions() ([]stepdef.Definition, error) {
	if m.GetDefinitionsFunc != nil {
		return m.GetDefinitionsFunc()
	}
	return nil, errors.New("MockStepFileProvider.GetDefinitionsFunc not implemented")
}

func (m *MockStepFileProvider) Source() string { return m.SourceName }
