/*
Package steprunner runs a list of steps one after another, stopping at the
first failure. It does no dependency ordering and runs nothing in parallel.
*/
package steprunner

import (
	"context"
	"time"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/event"
	"github.com/AntonioJCosta/stepshell/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Status is the outcome of one step in a run.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Outcome records how one step went.
type Outcome struct {
	ShortName   string
	Description string
	Status      Status
	ExitCode    int
	Duration    time.Duration
}

// Report holds the outcome of a complete run.
type Report struct {
	Outcomes []Outcome
	// ExitCode is the exit code of the first failing step, or 0.
	ExitCode int
	Duration time.Duration
}

func (r Report) Failed() bool { return r.ExitCode != 0 }

// Run executes steps in order. After a failure, or once ctx is cancelled,
// the remaining steps are skipped.
func Run(ctx context.Context, ec *ports.ExecutionContext, steps []ports.Step) Report {
	runStart := time.Now()
	report := Report{Outcomes: make([]Outcome, 0, len(steps))}

	for _, step := range steps {
		outcome := Outcome{
			ShortName:   step.ShortName(),
			Description: step.Description(ec),
		}

		if report.Failed() || ctx.Err() != nil {
			outcome.Status = StatusSkipped
			report.Outcomes = append(report.Outcomes, outcome)
			if report.ExitCode == 0 {
				report.ExitCode = 1
			}
			continue
		}

		if ec.Verbosity.ShouldPrintCommand() && ec.Events != nil {
			ec.Events.Post(event.Command("%s", outcome.Description))
		}

		start := time.Now()
		outcome.ExitCode = step.Execute(ctx, ec)
		outcome.Duration = time.Since(start)

		if outcome.ExitCode == 0 {
			outcome.Status = StatusPassed
		} else {
			outcome.Status = StatusFailed
			report.ExitCode = outcome.ExitCode
		}

		ec.Log().WithFields(logrus.Fields{
			"step":      outcome.ShortName,
			"exit_code": outcome.ExitCode,
			"duration":  outcome.Duration,
		}).Info("step finished")

		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.Duration = time.Since(runStart)
	return report
}
