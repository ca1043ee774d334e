package com0com

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sa6mwa/com0com/adapters/commandcapture"
	"github.com/sa6mwa/com0com/port"
)

// RunCommand executes cmd using the supplied runner with stdout and stderr
// merged into a single buffer, which is returned as a copy together with the
// runner's error. setupc prints its diagnostics to stdout, so only one stream
// needs inspecting.
func RunCommand(runner port.CommandRunner, cmd *exec.Cmd) ([]byte, error) {
	if runner == nil {
		return nil, fmt.Errorf("nil command runner")
	}
	capture, err := commandcapture.Merge(cmd)
	if err != nil {
		return nil, err
	}
	err = runner.Run(cmd)
	return capture.Finish(), err
}

func exitCodeFrom(runErr error, state *os.ProcessState) int {
	if state != nil {
		return state.ExitCode()
	}
	if runErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) && exitErr.ProcessState != nil {
		return exitErr.ProcessState.ExitCode()
	}
	return -1
}
