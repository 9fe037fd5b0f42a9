package ports

import "context"

/*
Step is a logical unit of build work. Callers such as a scheduler hold steps
only through this contract.
*/
type Step interface {
	// Execute runs the action and returns a process-style exit code (0 is
	// success). Ordinary command failure is reported through the code, never
	// through a panic.
	Execute(ctx context.Context, ec *ExecutionContext) int

	// Description renders what the step runs. It has no side effects and may
	// be called before or after Execute.
	Description(ec *ExecutionContext) string

	// ShortName is a stable identifier for logs and metrics.
	ShortName() string
}
