package console

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const resetCode = "\x1b[0m"

// Ansi renders highlighted text when colour is enabled and plain text otherwise.
// Each instance carries its own colour switch; it never touches color.NoColor.
type Ansi struct {
	enabled bool
	severe  *color.Color
	warning *color.Color
	command *color.Color
}

// NewAnsi creates a renderer with colour forced on or off.
func NewAnsi(enabled bool) *Ansi {
	a := &Ansi{
		enabled: enabled,
		severe:  color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow),
		command: color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{a.severe, a.warning, a.command} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return a
}

// DetectAnsi enables colour only when f is a terminal and colour was not
// disabled by the user or the environment (NO_COLOR, TERM=dumb).
func DetectAnsi(f *os.File, noColor bool) *Ansi {
	if noColor || color.NoColor || f == nil {
		return NewAnsi(false)
	}
	fd := f.Fd()
	return NewAnsi(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

func (a *Ansi) Enabled() bool { return a.enabled }

func (a *Ansi) Severe(s string) string { return a.severe.Sprint(s) }

func (a *Ansi) Warning(s string) string { return a.warning.Sprint(s) }

func (a *Ansi) Command(s string) string { return a.command.Sprint(s) }

// WriteReset writes the reset sequence to w so attributes left set by a
// child process do not bleed into later output. It writes nothing when
// colour is disabled.
func (a *Ansi) WriteReset(w io.Writer) error {
	if !a.enabled {
		return nil
	}
	_, err := io.WriteString(w, resetCode)
	return err
}
