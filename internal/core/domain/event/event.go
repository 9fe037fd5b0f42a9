/*
Package event defines the events a step posts for the user to see.
*/
package event

import "fmt"

// Level is the severity of an Event.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelSevere
	// LevelCommand marks the echo of a command about to run.
	LevelCommand
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelSevere:
		return "severe"
	case LevelCommand:
		return "command"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Event is a message destined for the build console.
type Event struct {
	Level   Level
	Message string
}

// Info builds an informational event from a format string.
func Info(format string, args ...any) Event {
	return Event{Level: LevelInfo, Message: fmt.Sprintf(format, args...)}
}

// Warning builds a warning event from a format string.
func Warning(format string, args ...any) Event {
	return Event{Level: LevelWarning, Message: fmt.Sprintf(format, args...)}
}

// Severe builds an error event from a format string.
func Severe(format string, args ...any) Event {
	return Event{Level: LevelSevere, Message: fmt.Sprintf(format, args...)}
}

// Command builds the echo of a command line about to run.
func Command(format string, args ...any) Event {
	return Event{Level: LevelCommand, Message: fmt.Sprintf(format, args...)}
}
