package com0com

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCom0com is matched by every error this package produces for a failed
// setupc operation.
var ErrCom0com = errors.New("com0com")

var (
	ErrMissingPortName = fmt.Errorf("%w: did not get port name for each port", ErrCom0com)
	ErrPortNotFound    = fmt.Errorf("%w: port not found", ErrCom0com)
)

// CommandError reports a setupc invocation that exited non-zero or could not
// be started. Output is the combined stdout and stderr, which is where setupc
// prints its diagnostics.
type CommandError struct {
	Command  []string
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "com0com command failed: " + e.Output
}

func (e *CommandError) Is(target error) bool {
	return target == ErrCom0com
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Summary is a one line description suitable for log output.
func (e *CommandError) Summary() string {
	if e == nil {
		return "<nil>"
	}
	out := strings.TrimSpace(e.Output)
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[:i]
	}
	return fmt.Sprintf("setupc %s: exit %d: %s", strings.Join(e.Command, " "), e.ExitCode, out)
}
