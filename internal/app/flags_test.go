package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("cave", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := parseFlags(t)
	assert.Equal(t, 10, cfg.CellSize)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, 10, cfg.StepRate)

	cc, err := cfg.CaveConfig()
	require.NoError(t, err)
	assert.Equal(t, 80, cc.Width)
	assert.Equal(t, 80, cc.Height)
	assert.Equal(t, int64(42), cc.Seed)
}

func TestConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cave.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 50\nheight: 50\nseed: 3\nfill: noise\n"), 0o644))

	cfg := parseFlags(t, "-config", path, "-h", "30", "-seed", "0")
	cc, err := cfg.CaveConfig()
	require.NoError(t, err)
	assert.Equal(t, 50, cc.Width)
	assert.Equal(t, 30, cc.Height)
	assert.Equal(t, int64(0), cc.Seed)
	assert.Equal(t, "noise", string(cc.Fill))
}

func TestConfigBadSeed(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("cave", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	assert.Error(t, fs.Parse([]string{"-seed", "abc"}))
}

func TestConfigMissingFile(t *testing.T) {
	cfg := parseFlags(t, "-config", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := cfg.CaveConfig()
	assert.Error(t, err)
}
