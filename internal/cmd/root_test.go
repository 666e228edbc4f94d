package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/patterns/internal/config"
)

// execute runs the root command with args against an isolated config home.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.HomeEnv, t.TempDir())

	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	output, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "patterns")
	assert.Contains(t, output, "design patterns")
	for _, flag := range []string{"--config", "--log-level", "--no-color"} {
		assert.Contains(t, output, flag)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "patterns", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"list", "describe", "run"} {
		assert.Contains(t, names, want)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\ncolor: always\n"), 0644))

	tests := []struct {
		name      string
		args      []string
		wantLevel string
		wantColor string
	}{
		{"file only", []string{"--config", path}, "warn", config.ColorAlways},
		{"log level flag wins", []string{"--config", path, "--log-level", "debug"}, "debug", config.ColorAlways},
		{"no-color flag wins", []string{"--config", path, "--no-color"}, "warn", config.ColorNever},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCommand()
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg, err := loadConfig(cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel)
			assert.Equal(t, tt.wantColor, cfg.Color)
		})
	}
}

func TestLoadConfigFromPatternsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, config.FileName), []byte("adapter:\n  amount: 7\n"), 0644))

	cfg, err := loadConfig(NewRootCommand())
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Adapter.Amount)
}

func TestMalformedConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unknown_key: 1\n"), 0644))

	_, err := execute(t, "list", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestInvalidLogLevelFails(t *testing.T) {
	_, err := execute(t, "list", "--log-level", "loud")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "log_level"))
}
