/*
Package console holds the real output sinks of a build: stdout, stderr and
the ANSI renderer used for them. A Console is also the event sink steps post
their messages to.
*/
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/event"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
)

// Console is safe for concurrent use; writes to each stream are serialized.
type Console struct {
	stdout io.Writer
	stderr io.Writer
	ansi   *Ansi
}

var _ ports.EventSink = (*Console)(nil)

// New creates a Console. It panics if a writer or the renderer is nil.
func New(stdout, stderr io.Writer, ansi *Ansi) *Console {
	if stdout == nil || stderr == nil {
		panic("console writers cannot be nil")
	}
	if ansi == nil {
		panic("ansi cannot be nil")
	}
	return &Console{
		stdout: &syncWriter{w: stdout},
		stderr: &syncWriter{w: stderr},
		ansi:   ansi,
	}
}

func (c *Console) Stdout() io.Writer { return c.stdout }

func (c *Console) Stderr() io.Writer { return c.stderr }

func (c *Console) Ansi() *Ansi { return c.ansi }

// Post renders an event on stderr. Warnings, severe events and command
// echoes are highlighted.
func (c *Console) Post(ev event.Event) {
	msg := ev.Message
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	switch ev.Level {
	case event.LevelSevere:
		msg = c.ansi.Severe(msg)
	case event.LevelWarning:
		msg = c.ansi.Warning(msg)
	case event.LevelCommand:
		msg = c.ansi.Command(msg)
	}
	fmt.Fprint(c.stderr, msg)
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
