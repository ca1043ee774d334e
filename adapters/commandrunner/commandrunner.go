package commandrunner

import (
	"os/exec"

	"github.com/sa6mwa/com0com/port"
)

// DefaultRunner executes commands using os/exec directly. Output routing is
// left to whatever the caller configured on cmd.
type DefaultRunner struct{}

var _ port.CommandRunner = DefaultRunner{}

// Run starts cmd and waits for it to exit.
func (DefaultRunner) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

// Default is a shared instance of DefaultRunner.
var Default port.CommandRunner = DefaultRunner{}
