package ports

import (
	"io"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/verbosity"
	"github.com/sirupsen/logrus"
)

// ExecutionContext is the ambient state a step runs in.
type ExecutionContext struct {
	// Environment is the complete environment handed to child processes.
	Environment map[string]string
	// ProjectRoot is the default working directory of child processes.
	ProjectRoot string
	Verbosity   verbosity.Level

	Events   EventSink
	Stderr   io.Writer
	Executor ProcessExecutor

	BuildID string
	Logger  *logrus.Entry
}

// Log returns the context's logger, or a discarding one when none was set.
func (ec *ExecutionContext) Log() *logrus.Entry {
	if ec.Logger != nil {
		return ec.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
