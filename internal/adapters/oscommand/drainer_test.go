package oscommand

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/AntonioJCosta/stepshell/internal/adapters/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestStreamDrainer(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		live         bool
		colors       bool
		wantText     string
		wantLive     string
		wantProduced bool
	}{
		{name: "capture", input: "hello", wantText: "hello", wantProduced: true},
		{name: "capture nothing", input: "", wantText: ""},
		{name: "live without colour", input: "hello", live: true, wantLive: "hello", wantProduced: true},
		{name: "live with colour resets", input: "hello", live: true, colors: true, wantLive: "hello\x1b[0m", wantProduced: true},
		{name: "live with colour and no output", input: "", live: true, colors: true, wantLive: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &closeRecorder{Reader: strings.NewReader(tt.input)}
			var sink bytes.Buffer
			var live io.Writer
			if tt.live {
				live = &sink
			}
			d := newStreamDrainer("stdout", src, live, console.NewAnsi(tt.colors))

			require.NoError(t, d.Drain())

			assert.True(t, src.closed, "source must be closed")
			assert.Equal(t, tt.live, d.Live())
			assert.Equal(t, tt.wantProduced, d.Produced())
			assert.Equal(t, tt.wantText, d.Text())
			assert.Equal(t, tt.wantLive, sink.String())
		})
	}
}

func TestStreamDrainer_ReadError(t *testing.T) {
	d := newStreamDrainer("stderr", failingReaderCloser{}, nil, console.NewAnsi(false))

	err := d.Drain()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "draining stderr")
}

type failingReaderCloser struct{}

func (failingReaderCloser) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func (failingReaderCloser) Close() error { return nil }
