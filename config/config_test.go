package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, filepath.Join("inputs", "day07.txt"), cfg.InputPath(7))

	l, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, l)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "input_dir: data\nlog_level: debug\ninputs:\n  16: /tmp/valves.txt\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "data", cfg.InputDir)
	require.Equal(t, "/tmp/valves.txt", cfg.InputPath(16))
	require.Equal(t, filepath.Join("data", "day12.txt"), cfg.InputPath(12))

	l, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, l)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "log_level: warn\n"))
	require.NoError(t, err)
	require.Equal(t, "inputs", cfg.InputDir)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	// the implicit default file may be absent
	t.Chdir(t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"level":     {"log_level: loud\n", config.ErrBadLogLevel},
		"day range": {"inputs:\n  30: x.txt\n", config.ErrBadInput},
		"empty":     {"inputs:\n  3: \"\"\n", config.ErrBadInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Load(writeFile(t, "input_dir: [unclosed\n"))
	require.Error(t, err)
}
