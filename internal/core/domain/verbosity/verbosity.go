/*
Package verbosity defines how chatty a build is. Levels are ordered: every
level prints everything the levels below it print.
*/
package verbosity

import (
	"fmt"
	"strings"
)

// Level is an ordered verbosity setting.
type Level int

const (
	// Silent prints nothing, not even the output of failing commands.
	Silent Level = iota
	// BinaryOutputs prints only what a binary being run writes.
	BinaryOutputs
	// StandardInformation is the default level.
	StandardInformation
	// Commands also prints each command before it runs.
	Commands
	// CommandsAndOutput also echoes the captured output of commands.
	CommandsAndOutput
	// All prints everything, including debug logs.
	All
)

var names = []string{
	"silent",
	"binary",
	"standard",
	"commands",
	"output",
	"all",
}

// String returns the flag name of the level.
func (l Level) String() string {
	if l < Silent || l > All {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return names[l]
}

// Parse converts a flag value such as "standard" into a Level.
func Parse(s string) (Level, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == needle {
			return Level(i), nil
		}
	}
	return Silent, fmt.Errorf("unknown verbosity %q (want one of %s)", s, strings.Join(names, ", "))
}

// Names lists the accepted flag values in order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func (l Level) ShouldPrintBinaryRunInformation() bool { return l >= BinaryOutputs }

func (l Level) ShouldPrintStandardInformation() bool { return l >= StandardInformation }

func (l Level) ShouldPrintCommand() bool { return l >= Commands }

func (l Level) ShouldPrintOutput() bool { return l >= CommandsAndOutput }

// ShouldUseVerbosityFlagIfAvailable reports whether tools that accept a
// verbose flag (for example `-v`) should be passed it.
func (l Level) ShouldUseVerbosityFlagIfAvailable() bool { return l >= CommandsAndOutput }
