package shellstep

import (
	"errors"
	"fmt"
)

var (
	// ErrNotExecuted means a result was read before Execute finished.
	ErrNotExecuted = errors.New("step has not been executed")
	// ErrNotCaptured means an output was read that was streamed live
	// instead of captured.
	ErrNotCaptured = errors.New("output was not captured")
)

/*
UsageError reports programmer misuse of a ShellStep. It is raised with panic
and is not meant to be recovered: it signals a bug in the caller, not a
runtime condition.
*/
type UsageError struct {
	Step   string
	What   string
	Reason error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Step, e.What, e.Reason)
}

func (e *UsageError) Unwrap() error { return e.Reason }
