package oscommand

import (
	"bytes"
	"fmt"
	"io"

	"github.com/AntonioJCosta/stepshell/internal/adapters/console"
)

// streamDrainer reads one process stream until end-of-stream, either
// forwarding it to a live sink or buffering it. Once started it always runs
// to completion.
type streamDrainer struct {
	name string
	src  io.ReadCloser
	live io.Writer // nil in capture mode
	buf  bytes.Buffer
	ansi *console.Ansi

	produced bool
}

func newStreamDrainer(name string, src io.ReadCloser, live io.Writer, ansi *console.Ansi) *streamDrainer {
	return &streamDrainer{name: name, src: src, live: live, ansi: ansi}
}

// Drain owns src and closes it when done.
func (d *streamDrainer) Drain() error {
	defer d.src.Close()

	dst := io.Writer(&d.buf)
	if d.live != nil {
		dst = d.live
	}
	n, err := io.Copy(dst, d.src)
	d.produced = n > 0
	if err != nil {
		return fmt.Errorf("draining %s: %w", d.name, err)
	}
	if d.live != nil && d.produced {
		if err := d.ansi.WriteReset(d.live); err != nil {
			return fmt.Errorf("resetting %s: %w", d.name, err)
		}
	}
	return nil
}

// Produced reports whether any byte was read. Valid after Drain returns.
func (d *streamDrainer) Produced() bool { return d.produced }

// Text returns the buffered output. Valid after Drain returns.
func (d *streamDrainer) Text() string { return d.buf.String() }

func (d *streamDrainer) Live() bool { return d.live != nil }
