/*
Package process holds the value types exchanged with a process executor:
launch specs, execution options and results.
*/
package process

import "strings"

// Option is a set of flags controlling how an executor treats a process's output.
// Flags are orthogonal; any combination is valid.
type Option uint8

const (
	// StreamStdoutLive forwards stdout to the real sink as it is produced
	// instead of buffering it.
	StreamStdoutLive Option = 1 << iota
	// StreamStderrLive forwards stderr to the real sink as it is produced
	// instead of buffering it.
	StreamStderrLive
	// Silent suppresses all forwarding of buffered output, even on failure.
	Silent
)

// Has reports whether every flag in f is set in o.
func (o Option) Has(f Option) bool {
	return o&f == f
}

func (o Option) String() string {
	if o == 0 {
		return "none"
	}
	var parts []string
	if o.Has(StreamStdoutLive) {
		parts = append(parts, "stream-stdout")
	}
	if o.Has(StreamStderrLive) {
		parts = append(parts, "stream-stderr")
	}
	if o.Has(Silent) {
		parts = append(parts, "silent")
	}
	return strings.Join(parts, "|")
}

// Output is the text of one process stream. It is present only when the
// stream was buffered rather than streamed live.
type Output struct {
	text    string
	present bool
}

// Captured wraps buffered stream text.
func Captured(text string) Output {
	return Output{text: text, present: true}
}

// Get returns the text and whether it was captured.
func (o Output) Get() (string, bool) {
	return o.text, o.present
}

// IsPresent reports whether the stream was captured.
func (o Output) IsPresent() bool {
	return o.present
}

// Result is the immutable outcome of running a process to completion.
type Result struct {
	ExitCode int
	Stdout   Output
	Stderr   Output
}

// Interrupted is the result reported when the process could not be driven to
// completion: it was killed from outside, or an I/O error broke the interaction.
func Interrupted() Result {
	return Result{ExitCode: 1}
}

// Spec describes a native process to launch.
type Spec struct {
	// Command is the program followed by its arguments.
	Command []string
	// Env is the complete environment of the child in KEY=value form.
	// An empty slice means an empty environment, never "inherit".
	Env []string
	// Dir is the working directory of the child.
	Dir string
	// PipeStdin requests a writable stdin pipe. Without it the child reads
	// from the null device.
	PipeStdin bool
}
