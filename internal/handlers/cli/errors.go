package cli

import (
	"errors"
	"fmt"
)

// ErrNoSteps indicates that neither a step file nor a command was given.
var ErrNoSteps = errors.New("nothing to run: pass --file, --run or a command after --")

// ExitError carries the exit code of a failed build back to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("build failed with exit code %d", e.Code)
}
