// Package config loads com0comctl settings from an optional yaml file and
// COM0COM_* environment variables.
package config

import "time"

// Output formats understood by com0comctl.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

type Config struct {
	// InstallDir skips the registry lookup when set.
	InstallDir    string        `yaml:"install_dir" mapstructure:"install_dir"`
	Binary        string        `yaml:"binary" mapstructure:"binary"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	ReadOnly      bool          `yaml:"read_only" mapstructure:"read_only"`
	GlobalOptions []string      `yaml:"global_options" mapstructure:"global_options"`
	Output        string        `yaml:"output" mapstructure:"output"`
	Log           LogConfig     `yaml:"log" mapstructure:"log"`
	Probe         ProbeConfig   `yaml:"probe" mapstructure:"probe"`
}

type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`             // panic..trace
	Format     string `yaml:"format" mapstructure:"format"`           // text or json
	Output     string `yaml:"output" mapstructure:"output"`           // stdout, stderr or file
	FilePath   string `yaml:"file_path" mapstructure:"file_path"`     // used when output is file
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`       // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"` // rotated files kept
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`         // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Caller     bool   `yaml:"caller" mapstructure:"caller"`
}

// ProbeConfig controls the loopback check run against a port pair.
type ProbeConfig struct {
	BaudRate int           `yaml:"baud_rate" mapstructure:"baud_rate"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Payload  string        `yaml:"payload" mapstructure:"payload"`
}
