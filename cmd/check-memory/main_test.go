package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeStats(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meminfo")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

const healthyStats = `MemTotal: 1000000 kB
MemFree: 100000 kB
Buffers: 50000 kB
Cached: 50000 kB
SwapTotal: 500000 kB
SwapFree: 500000 kB
`

func TestRunExitCodes(t *testing.T) {
	healthy := writeStats(t, healthyStats)
	exhausted := writeStats(t, `MemTotal: 1000000 kB
MemFree: 50000 kB
SwapTotal: 500000 kB
SwapFree: 500000 kB
`)
	noSwap := writeStats(t, `MemTotal: 1000000 kB
MemFree: 500000 kB
SwapTotal: 0 kB
SwapFree: 0 kB
`)

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"ok", []string{"-meminfo", healthy}, 0},
		{"warning via lowered threshold", []string{"-meminfo", healthy, "-w", "75"}, 1},
		{"critical via lowered threshold", []string{"-meminfo", healthy, "-c", "80"}, 2},
		{"critical at defaults", []string{"-meminfo", exhausted}, 2},
		{"short and long flags agree", []string{"-meminfo", healthy, "--warning", "75"}, 1},
		{"no swap configured ignores swap thresholds", []string{"-meminfo", noSwap, "-sw", "0", "-sc", "0"}, 0},
		{"malformed threshold", []string{"-w", "lots"}, 3},
		{"unexpected positional argument", []string{"-meminfo", healthy, "extra"}, 3},
		{"unreadable stats source", []string{"-meminfo", filepath.Join(t.TempDir(), "missing")}, 3},
		{"version", []string{"-version"}, 0},
	}
	for i := range cases {
		tt := cases[i]
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, run(tt.args))
		})
	}
}

func TestRunMissingRequiredField(t *testing.T) {
	path := writeStats(t, "MemTotal: 1000000 kB\nMemFree: 100000 kB\nSwapTotal: 500000 kB\n")
	require.Equal(t, 3, run([]string{"-meminfo", path}))
}

func TestRunConfigFilePrecedence(t *testing.T) {
	stats := writeStats(t, healthyStats)

	confPath := filepath.Join(t.TempDir(), "check.yaml")
	require.NoError(t, os.WriteFile(confPath, []byte("warning: 75\n"), 0644))

	// File lowers the warning threshold below the 80% reading.
	require.Equal(t, 1, run([]string{"-meminfo", stats, "-config", confPath}))
	// A flag beats the file.
	require.Equal(t, 0, run([]string{"-meminfo", stats, "-config", confPath, "-w", "85"}))
	// Unreadable config file is an environmental failure.
	require.Equal(t, 3, run([]string{"-meminfo", stats, "-config", filepath.Join(t.TempDir(), "nope.yaml")}))
}
