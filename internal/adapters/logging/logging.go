/*
Package logging builds the structured logger threaded through an execution
context.
*/
package logging

import (
	"io"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/verbosity"
	"github.com/sirupsen/logrus"
)

// LevelFor maps a build verbosity onto a log level.
func LevelFor(v verbosity.Level) logrus.Level {
	switch {
	case v >= verbosity.All:
		return logrus.DebugLevel
	case v >= verbosity.Commands:
		return logrus.InfoLevel
	case v == verbosity.Silent:
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

// New returns a logger entry writing to w, tagged with the build ID.
func New(w io.Writer, v verbosity.Level, buildID string, colors bool) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(LevelFor(v))
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !colors,
		ForceColors:      colors,
		DisableTimestamp: v < verbosity.All,
		FullTimestamp:    true,
	})
	return l.WithField("build_id", buildID)
}
