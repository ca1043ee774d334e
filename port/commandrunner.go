package port

import (
	"os/exec"
)

// CommandRunner abstracts how a prepared setupc command is executed so tests
// can substitute a mock without spawning processes.
type CommandRunner interface {
	Run(cmd *exec.Cmd) error
}
