package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix  = "COM0COM"
	DefaultConfigName = "com0com"
)

// Loader reads Config through its own viper instance so callers can bind
// command line flags to it before Load.
type Loader struct {
	configPath string
	envPrefix  string
	viper      *viper.Viper
}

// NewLoader returns a Loader reading configPath, or when empty, com0com.yaml
// from the user config directory or the working directory.
func NewLoader(configPath, envPrefix string) *Loader {
	if envPrefix == "" {
		envPrefix = DefaultEnvPrefix
	}
	return &Loader{
		configPath: configPath,
		envPrefix:  envPrefix,
		viper:      viper.New(),
	}
}

// Viper exposes the underlying instance, e.g. for BindPFlag.
func (l *Loader) Viper() *viper.Viper {
	return l.viper
}

// Load merges defaults, the config file, environment and bound flags, and
// validates the result.
func (l *Loader) Load() (*Config, error) {
	l.viper.SetConfigType("yaml")
	l.viper.SetEnvPrefix(l.envPrefix)
	l.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.viper.AutomaticEnv()

	l.setDefaults()

	if err := l.loadConfigFile(); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ConfigFileUsed is the file Load read, empty when none was found.
func (l *Loader) ConfigFileUsed() string {
	return l.viper.ConfigFileUsed()
}

func (l *Loader) loadConfigFile() error {
	if l.configPath != "" {
		l.viper.SetConfigFile(l.configPath)
		return l.viper.ReadInConfig()
	}

	if dir, err := os.UserConfigDir(); err == nil {
		l.viper.AddConfigPath(filepath.Join(dir, DefaultConfigName))
	}
	l.viper.AddConfigPath(".")
	l.viper.SetConfigName(DefaultConfigName)

	err := l.viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

func (l *Loader) setDefaults() {
	l.viper.SetDefault("install_dir", "")
	l.viper.SetDefault("binary", "setupc.exe")
	l.viper.SetDefault("timeout", "0s")
	l.viper.SetDefault("read_only", false)
	l.viper.SetDefault("global_options", []string{})
	l.viper.SetDefault("output", OutputTable)

	l.viper.SetDefault("log.level", "warn")
	l.viper.SetDefault("log.format", "text")
	l.viper.SetDefault("log.output", "stderr")
	l.viper.SetDefault("log.file_path", "./logs/com0comctl.log")
	l.viper.SetDefault("log.max_size", 10)
	l.viper.SetDefault("log.max_backups", 3)
	l.viper.SetDefault("log.max_age", 28)
	l.viper.SetDefault("log.compress", false)
	l.viper.SetDefault("log.caller", false)

	l.viper.SetDefault("probe.baud_rate", 115200)
	l.viper.SetDefault("probe.timeout", "2s")
	l.viper.SetDefault("probe.payload", "com0com loopback")
}

// Validate checks the values Load cannot type check on its own.
func Validate(cfg *Config) error {
	switch strings.ToLower(cfg.Output) {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Output)
	}
	if cfg.Binary == "" {
		return errors.New("binary is required")
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s", cfg.Timeout)
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", cfg.Log.Format)
	}
	switch strings.ToLower(cfg.Log.Output) {
	case "stdout", "stderr":
	case "file":
		if cfg.Log.FilePath == "" {
			return errors.New("log file path is required when output is file")
		}
	default:
		return fmt.Errorf("unsupported log output: %s", cfg.Log.Output)
	}
	if cfg.Probe.BaudRate <= 0 {
		return fmt.Errorf("invalid probe baud rate: %d", cfg.Probe.BaudRate)
	}
	if cfg.Probe.Timeout <= 0 {
		return fmt.Errorf("invalid probe timeout: %s", cfg.Probe.Timeout)
	}
	if cfg.Probe.Payload == "" {
		return errors.New("probe payload is required")
	}
	return nil
}
