package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like durations
)

// Step Specific Colors
var (
	StepNameColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	CommandColor  = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// StatusColor picks the colour for a step status word.
func StatusColor(status string) string {
	switch status {
	case "passed":
		return SuccessColor(status)
	case "failed":
		return ErrorColor(status)
	default:
		return WarningColor(status)
	}
}
