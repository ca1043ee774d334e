package mockrunner

import (
	"errors"
	"io"
	"os/exec"
	"slices"
	"sync"

	"github.com/sa6mwa/com0com/port"
)

// Behavior represents a single command execution path for the mock runner.
type Behavior func(cmd *exec.Cmd) error

// Runner is a thread-safe port.CommandRunner that replays queued behaviors
// and records what it was asked to run.
type Runner struct {
	mu        sync.Mutex
	behaviors []Behavior
	Calls     int
	Paths     []string
	Args      [][]string
	Dirs      []string
}

var _ port.CommandRunner = (*Runner)(nil)

// New constructs a Runner that will invoke behaviors sequentially for each
// call. Calls beyond the queue succeed without output.
func New(behaviors ...Behavior) *Runner {
	return &Runner{behaviors: slices.Clone(behaviors)}
}

// Run records the call metadata and dispatches to the next behavior.
func (r *Runner) Run(cmd *exec.Cmd) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls++
	r.Paths = append(r.Paths, cmd.Path)
	r.Args = append(r.Args, slices.Clone(cmd.Args))
	r.Dirs = append(r.Dirs, cmd.Dir)

	if len(r.behaviors) == 0 {
		return nil
	}
	behavior := r.behaviors[0]
	r.behaviors = r.behaviors[1:]
	return behavior(cmd)
}

// Remaining returns the number of queued behaviors that have not yet been consumed.
func (r *Runner) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.behaviors)
}

// LastArgs returns the argument vector of the most recent call, without the
// binary path in position zero.
func (r *Runner) LastArgs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Args) == 0 {
		return nil
	}
	last := r.Args[len(r.Args)-1]
	if len(last) == 0 {
		return nil
	}
	return slices.Clone(last[1:])
}

// Output returns a behavior that writes out to the command's stdout and
// succeeds.
func Output(out string) Behavior {
	return func(cmd *exec.Cmd) error {
		return write(cmd.Stdout, out)
	}
}

// Fail returns a behavior that writes out to the command's stderr and then
// fails with err, or a generic error when err is nil.
func Fail(out string, err error) Behavior {
	if err == nil {
		err = errors.New("exit status 1")
	}
	return func(cmd *exec.Cmd) error {
		if werr := write(cmd.Stderr, out); werr != nil {
			return werr
		}
		return err
	}
}

func write(w io.Writer, s string) error {
	if w == nil || s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
