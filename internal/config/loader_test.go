package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "com0com.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := NewLoader("", "").Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.InstallDir)
	assert.Equal(t, "setupc.exe", cfg.Binary)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.False(t, cfg.ReadOnly)
	assert.Empty(t, cfg.GlobalOptions)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, 115200, cfg.Probe.BaudRate)
	assert.Equal(t, 2*time.Second, cfg.Probe.Timeout)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
install_dir: 'C:\com0com'
timeout: 30s
read_only: true
global_options: ["--no-update"]
output: json
log:
  level: debug
  format: json
probe:
  baud_rate: 9600
  payload: ping
`)

	l := NewLoader(path, "")
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, path, l.ConfigFileUsed())
	assert.Equal(t, `C:\com0com`, cfg.InstallDir)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, []string{"--no-update"}, cfg.GlobalOptions)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 9600, cfg.Probe.BaudRate)
	assert.Equal(t, "ping", cfg.Probe.Payload)
	// untouched keys keep their defaults
	assert.Equal(t, "setupc.exe", cfg.Binary)
	assert.Equal(t, 2*time.Second, cfg.Probe.Timeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "output: json\nlog:\n  level: info\n")
	t.Setenv("COM0COM_OUTPUT", "yaml")
	t.Setenv("COM0COM_LOG_LEVEL", "trace")
	t.Setenv("COM0COM_INSTALL_DIR", `D:\tools\com0com`)

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, `D:\tools\com0com`, cfg.InstallDir)
}

func TestLoadCustomPrefix(t *testing.T) {
	isolate(t)
	t.Setenv("SETUPC_TIMEOUT", "5s")
	cfg, err := NewLoader("", "SETUPC").Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), "").Load()
	assert.Error(t, err)
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("com0com.yaml", []byte("binary: setupc-x64.exe\n"), 0o644))

	cfg, err := NewLoader("", "").Load()
	require.NoError(t, err)
	assert.Equal(t, "setupc-x64.exe", cfg.Binary)
}

func TestLoadInvalid(t *testing.T) {
	isolate(t)
	for name, body := range map[string]string{
		"output":     "output: xml\n",
		"log level":  "log:\n  level: loud\n",
		"log format": "log:\n  format: logfmt\n",
		"log output": "log:\n  output: syslog\n",
		"timeout":    "timeout: -1s\n",
		"baud rate":  "probe:\n  baud_rate: 0\n",
		"binary":     "binary: ''\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewLoader(writeConfig(t, body), "").Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateFileOutputNeedsPath(t *testing.T) {
	cfg := &Config{
		Output: OutputTable,
		Binary: "setupc.exe",
		Log:    LogConfig{Level: "info", Format: "text", Output: "file"},
		Probe:  ProbeConfig{BaudRate: 9600, Timeout: time.Second, Payload: "x"},
	}
	assert.Error(t, Validate(cfg))
	cfg.Log.FilePath = "x.log"
	assert.NoError(t, Validate(cfg))
}
