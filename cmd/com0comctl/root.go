package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sa6mwa/com0com"
	"github.com/sa6mwa/com0com/internal/config"
	"github.com/sa6mwa/com0com/internal/logger"
	"github.com/sa6mwa/com0com/internal/probe"
)

// app carries what the subcommands share. The constructors are fields so
// tests can substitute them.
type app struct {
	cfgFile string
	noColor bool

	cfg *config.Config
	log *logrus.Logger

	newBackend func(cfg *config.Config, log logrus.FieldLogger) (com0com.Backend, error)
	opener     probe.Opener
	visible    func() ([]string, error)
}

func newApp() *app {
	return &app{
		newBackend: newRunner,
		opener:     probe.Serial,
		visible:    probe.Visible,
	}
}

func newRunner(cfg *config.Config, log logrus.FieldLogger) (com0com.Backend, error) {
	opts := []com0com.Option{
		com0com.WithBinary(cfg.Binary),
		com0com.WithTimeout(cfg.Timeout),
		com0com.WithGlobalOptions(cfg.GlobalOptions...),
		com0com.WithLogger(log),
	}
	if cfg.InstallDir != "" {
		opts = append(opts, com0com.WithInstallDir(cfg.InstallDir))
	}
	r, err := com0com.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("locate com0com: %w", err)
	}
	return r, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "com0comctl",
		Short: "Manage com0com virtual serial port pairs",
		Long: `com0comctl drives the com0com null-modem emulator through setupc.exe.

Examples:
  com0comctl install PortName=COM20 PortName=COM21
  com0comctl change CNCA0 EmuBR=yes,EmuOverrun=yes
  com0comctl list -o yaml
  com0comctl probe 0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Close(a.log)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: com0com.yaml in the user config dir or working dir)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringP("output", "o", "", "output format (table, json, yaml)")
	flags.String("install-dir", "", "com0com install directory, skips the registry lookup")
	flags.Bool("read-only", false, "refuse every setupc command that changes driver state")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newInstallCmd(a),
		newRemoveCmd(a),
		newEnableCmd(a),
		newDisableCmd(a),
		newChangeCmd(a),
		newListCmd(a),
		newGetCmd(a),
		newBusyNamesCmd(a),
		newVisibleCmd(a),
		newProbeCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	loader := config.NewLoader(a.cfgFile, config.DefaultEnvPrefix)
	if err := bindFlags(loader.Viper(), cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(&cfg.Log)
	if err != nil {
		return err
	}
	if a.noColor {
		pterm.DisableColor()
	}

	a.cfg, a.log = cfg, log
	if used := loader.ConfigFileUsed(); used != "" {
		log.WithField("file", used).Debug("loaded config")
	}
	return nil
}

// flagKeys maps config keys to the persistent flags overriding them.
var flagKeys = map[string]string{
	"log.level":   "log-level",
	"output":      "output",
	"install_dir": "install-dir",
	"read_only":   "read-only",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag --%s not defined", name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// context returns the command context with the read-only policy applied
// when configured.
func (a *app) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.ReadOnly {
		ctx = com0com.ReadOnly(ctx)
	}
	return ctx
}

func (a *app) backend() (com0com.Backend, error) {
	return a.newBackend(a.cfg, a.log)
}
