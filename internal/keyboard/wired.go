package keyboard

import (
	"fmt"
	"io"
	"os"
)

// WriterTransport is the wired transport: keystroke units go byte-by-byte
// into a writer, typically a HID gadget device file. It has no link
// handshake and reports linked whenever started.
type WriterTransport struct {
	w       io.Writer
	layout  string
	name    string
	started bool
}

// NewWriterTransport wraps w as a wired transport.
func NewWriterTransport(w io.Writer) *WriterTransport {
	return &WriterTransport{w: w}
}

// OpenDeviceTransport opens a character device (e.g. /dev/hidg0) as the
// wired transport.
func OpenDeviceTransport(path string) (*WriterTransport, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard device: %w", err)
	}
	return NewWriterTransport(f), nil
}

func (t *WriterTransport) SetLayout(layout string) { t.layout = layout }
func (t *WriterTransport) SetName(name string)     { t.name = name }

func (t *WriterTransport) Start() error {
	t.started = true
	return nil
}

func (t *WriterTransport) Stop() { t.started = false }

func (t *WriterTransport) IsLinked() bool { return t.started }

func (t *WriterTransport) WriteUnit(b byte) error {
	if !t.started {
		return fmt.Errorf("transport not started")
	}
	_, err := t.w.Write([]byte{b})
	return err
}
