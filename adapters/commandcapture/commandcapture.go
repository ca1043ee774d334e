// Package commandcapture merges a command's stdout and stderr into a single
// buffer, which is where setupc diagnostics end up regardless of stream.
package commandcapture

import (
	"bytes"
	"errors"
	"os/exec"
	"slices"
	"sync"

	"github.com/sa6mwa/com0com/port"
)

const initialSize = 256

var (
	ErrNilCommand       = errors.New("nil command")
	ErrOutputConfigured = errors.New("command stdout or stderr already configured")
)

type capture struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	cmd  *exec.Cmd
	once sync.Once
}

var _ port.CommandCapture = (*capture)(nil)

// Merge points both output streams of cmd at one capture. Since the same
// writer is used for both, os/exec gives the child a single pipe and the
// interleaving matches what a console would show.
func Merge(cmd *exec.Cmd) (port.CommandCapture, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}
	if cmd.Stdout != nil || cmd.Stderr != nil {
		return nil, ErrOutputConfigured
	}
	c := &capture{cmd: cmd}
	c.buf.Grow(initialSize)
	cmd.Stdout = c
	cmd.Stderr = c
	return c, nil
}

func (c *capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// Finish detaches the capture and returns a copy of everything written.
func (c *capture) Finish() []byte {
	c.Restore()
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.buf.Bytes())
}

// Restore clears the command's writers. Only the first call has an effect.
func (c *capture) Restore() {
	if c == nil {
		return
	}
	c.once.Do(func() {
		c.cmd.Stdout = nil
		c.cmd.Stderr = nil
	})
}
