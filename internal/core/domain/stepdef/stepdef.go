/*
Package stepdef defines the declarative form of a build step as it appears in
a step file. A Definition describes exactly one kind of step: a command (Run
or Command), a directory to create (Mkdir) or a file to write (Write).
*/
package stepdef

// File is the top-level document of a step file.
type File struct {
	Steps []Definition `yaml:"steps"`
}

// Definition is one step of a step file.
type Definition struct {
	Name string `yaml:"name"`

	// Run is a command line split with POSIX shell word rules.
	Run string `yaml:"run,omitempty"`
	// Command is an already-split command line.
	Command []string `yaml:"command,omitempty"`

	Env   map[string]string `yaml:"env,omitempty"`
	Dir   string            `yaml:"dir,omitempty"`
	Stdin *string           `yaml:"stdin,omitempty"`

	// VerboseFlag is appended to the command when the build runs at output
	// verbosity or above, for tools that take a flag such as -v.
	VerboseFlag string `yaml:"verbose_flag,omitempty"`

	Live        bool  `yaml:"live,omitempty"`
	PrintStdout bool  `yaml:"print_stdout,omitempty"`
	PrintStderr *bool `yaml:"print_stderr,omitempty"`

	Mkdir string     `yaml:"mkdir,omitempty"`
	Write *WriteSpec `yaml:"write,omitempty"`
}

// WriteSpec is the body of a file-writing step.
type WriteSpec struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

// Kind names which kind of step a Definition describes.
type Kind string

const (
	KindShell Kind = "shell"
	KindMkdir Kind = "mkdir"
	KindWrite Kind = "write"
)

// Kinds returns every kind the definition declares. A valid definition
// declares exactly one.
func (d Definition) Kinds() []Kind {
	var kinds []Kind
	if d.Run != "" || len(d.Command) > 0 {
		kinds = append(kinds, KindShell)
	}
	if d.Mkdir != "" {
		kinds = append(kinds, KindMkdir)
	}
	if d.Write != nil {
		kinds = append(kinds, KindWrite)
	}
	return kinds
}
