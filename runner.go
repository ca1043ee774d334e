package com0com

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sa6mwa/com0com/adapters/commandrunner"
	"github.com/sa6mwa/com0com/adapters/registry"
	"github.com/sa6mwa/com0com/port"
)

// DefaultBinary is the setupc executable inside the install directory.
const DefaultBinary = "setupc.exe"

// Runner runs setupc.exe directly. The install directory is resolved once in
// New; a Runner holds no other state and may be shared.
type Runner struct {
	dir           string
	binary        string
	globalOptions []string
	timeout       time.Duration
	runner        port.CommandRunner
	log           logrus.FieldLogger
}

var _ Backend = (*Runner)(nil)

type config struct {
	locator       port.Locator
	dir           string
	binary        string
	globalOptions []string
	timeout       time.Duration
	runner        port.CommandRunner
	log           logrus.FieldLogger
}

type Option func(*config)

// WithInstallDir uses dir instead of asking the registry.
func WithInstallDir(dir string) Option {
	return func(c *config) { c.dir = dir }
}

func WithLocator(l port.Locator) Option {
	return func(c *config) { c.locator = l }
}

func WithCommandRunner(r port.CommandRunner) Option {
	return func(c *config) { c.runner = r }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) { c.log = l }
}

// WithBinary overrides the executable name, relative to the install
// directory unless absolute.
func WithBinary(name string) Option {
	return func(c *config) { c.binary = name }
}

// WithTimeout bounds every invocation. Zero, the default, waits for setupc to
// exit no matter how long it takes.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithGlobalOptions adds setupc options, e.g. "--no-update", placed right
// after --silent on every invocation.
func WithGlobalOptions(opts ...string) Option {
	return func(c *config) { c.globalOptions = append(c.globalOptions, opts...) }
}

// New returns a Runner for the local com0com installation. Unless
// WithInstallDir is given the install directory is read from the registry;
// a lookup failure is returned as-is.
func New(opts ...Option) (*Runner, error) {
	cfg := &config{
		locator: registry.Default,
		binary:  DefaultBinary,
		runner:  commandrunner.Default,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	dir := cfg.dir
	if dir == "" {
		var err error
		if dir, err = cfg.locator.InstallDir(); err != nil {
			return nil, err
		}
	}
	log := cfg.log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Runner{
		dir:           dir,
		binary:        cfg.binary,
		globalOptions: slices.Clone(cfg.globalOptions),
		timeout:       cfg.timeout,
		runner:        cfg.runner,
		log:           log,
	}, nil
}

// InstallDir is the directory setupc runs in.
func (r *Runner) InstallDir() string {
	return r.dir
}

// BinaryPath is the full path of the setupc executable.
func (r *Runner) BinaryPath() string {
	if filepath.IsAbs(r.binary) {
		return r.binary
	}
	return filepath.Join(r.dir, r.binary)
}

// Exec runs setupc with args and reports the raw outcome. The command policy
// carried by ctx is enforced before anything is started.
func (r *Runner) Exec(ctx context.Context, args ...string) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	command := commandName(args)
	if err := CheckPolicy(ctx, command); err != nil {
		return Result{ExitCode: -1, Error: err}
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	argv := make([]string, 0, len(r.globalOptions)+len(args)+1)
	argv = append(argv, "--silent")
	argv = append(argv, r.globalOptions...)
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, r.BinaryPath(), argv...)
	cmd.Dir = r.dir

	log := r.log.WithFields(logrus.Fields{
		"invocation": uuid.NewString(),
		"command":    command,
		"args":       argv,
		"dir":        r.dir,
	})
	log.Debug("running setupc")
	start := time.Now()
	out, err := RunCommand(r.runner, cmd)
	res := Result{
		ExitCode:       exitCodeFrom(err, cmd.ProcessState),
		Error:          err,
		CombinedOutput: out,
	}
	log = log.WithField("elapsed", time.Since(start))
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"exit_code": res.ExitCode,
			"output":    string(out),
		}).Debug("setupc failed")
	} else {
		log.Debug("setupc finished")
	}
	return res
}

// Run runs setupc with args and returns its combined output. A non-zero exit
// is reported as *CommandError embedding that output. Options that take a
// value belong in WithGlobalOptions, not in args.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	res := r.Exec(ctx, args...)
	if res.Error != nil {
		var denied *PolicyError
		if errors.As(res.Error, &denied) {
			return "", res.Error
		}
		return string(res.CombinedOutput), &CommandError{
			Command:  slices.Clone(args),
			ExitCode: res.ExitCode,
			Output:   string(res.CombinedOutput),
			Err:      res.Error,
		}
	}
	return string(res.CombinedOutput), nil
}

func (r *Runner) InstallPair(ctx context.Context, a, b Params) (PortPair, error) {
	out, err := r.Run(ctx, CmdInstall, a.String(), b.String())
	if err != nil {
		return PortPair{}, err
	}
	return parseInstallOutput(out)
}

// InstallPairNumber creates the pair CNCA<n>/CNCB<n>.
func (r *Runner) InstallPairNumber(ctx context.Context, n int, a, b Params) (PortPair, error) {
	out, err := r.Run(ctx, CmdInstall, strconv.Itoa(n), a.String(), b.String())
	if err != nil {
		return PortPair{}, err
	}
	return parseInstallOutput(out)
}

func (r *Runner) RemovePair(ctx context.Context, pair PortPair) error {
	n, err := pair.PairNumber()
	if err != nil {
		return err
	}
	_, err = r.Run(ctx, CmdRemove, strconv.Itoa(n))
	return err
}

func (r *Runner) DisableAll(ctx context.Context) error {
	_, err := r.Run(ctx, CmdDisable, "all")
	return err
}

func (r *Runner) EnableAll(ctx context.Context) error {
	_, err := r.Run(ctx, CmdEnable, "all")
	return err
}

func (r *Runner) ChangeParams(ctx context.Context, port string, params Params) error {
	_, err := r.Run(ctx, CmdChange, port, params.String())
	return err
}

func (r *Runner) ListPorts(ctx context.Context) (Ports, error) {
	out, err := r.Run(ctx, CmdList)
	if err != nil {
		return nil, err
	}
	return parseListOutput(out), nil
}

// ListPortsDetailed is ListPorts with --detail-prms, which makes setupc
// report every parameter including defaults.
func (r *Runner) ListPortsDetailed(ctx context.Context) (Ports, error) {
	out, err := r.Run(ctx, "--detail-prms", CmdList)
	if err != nil {
		return nil, err
	}
	return parseListOutput(out), nil
}

func (r *Runner) BusyNames(ctx context.Context, pattern string) ([]string, error) {
	out, err := r.Run(ctx, CmdBusyNames, pattern)
	if err != nil {
		return nil, err
	}
	return parseBusyNames(out), nil
}
