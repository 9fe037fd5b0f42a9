package testutil

import (
	"context"

	"github.com/AntonioJCosta/stepshell/internal/core/ports"
)

// MockStep is a mock implementation of ports.Step.
type MockStep struct {
	Name        string
	Desc        string
	ExecuteFunc func(ctx context.Context, ec *ports.ExecutionContext) int

	ExecuteCalls int
}

// Execute counts the call and returns the mock ExecuteFunc's code, or 0.
func (m *MockStep) Execute(ctx context.Context, ec *ports.ExecutionContext) int {
	m.ExecuteCalls++
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, ec)
	}
	return 0
}

func (m *MockStep) Description(*ports.ExecutionContext) string { return m.Desc }

func (m *MockStep) ShortName() string { return m.Name }
