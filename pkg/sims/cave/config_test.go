package cave

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":               "50",
		"h":               "40",
		"seed":            "-3",
		"survive_above":   "2",
		"birth_above":     "9",
		"fill":            "noise",
		"noise_scale":     "0.05",
		"noise_threshold": "1.5",
	})
	assert.Equal(t, 50, c.Width)
	assert.Equal(t, 40, c.Height)
	assert.Equal(t, int64(-3), c.Seed)
	assert.Equal(t, 2, c.Rule.SurviveAbove)
	assert.Equal(t, 4, c.Rule.BirthAbove, "out of range threshold must be ignored")
	assert.Equal(t, FillNoise, c.Fill)
	assert.Equal(t, 0.05, c.NoiseScale)
	assert.Equal(t, 0.5, c.NoiseThreshold)

	assert.Equal(t, DefaultConfig(), FromMap(nil))
	assert.Equal(t, DefaultConfig(), FromMap(map[string]string{"w": "-1", "fill": "perlin"}))
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, Config)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
width: 50
height: 50
seed: 7
`,
			validate: func(t *testing.T, c Config) {
				assert.Equal(t, 50, c.Width)
				assert.Equal(t, int64(7), c.Seed)
				assert.Equal(t, Rule{SurviveAbove: 3, BirthAbove: 4}, c.Rule)
				assert.Equal(t, FillCoin, c.Fill)
			},
		},
		{
			name: "full config",
			yamlContent: `
width: 120
height: 60
rule:
  surviveAbove: 4
  birthAbove: 5
fill: noise
noiseScale: 0.2
noiseThreshold: 0.45
`,
			validate: func(t *testing.T, c Config) {
				assert.Equal(t, 120, c.Width)
				assert.Equal(t, 60, c.Height)
				assert.Equal(t, Rule{SurviveAbove: 4, BirthAbove: 5}, c.Rule)
				assert.Equal(t, FillNoise, c.Fill)
				assert.Equal(t, 0.2, c.NoiseScale)
				assert.Equal(t, 0.45, c.NoiseThreshold)
			},
		},
		{
			name:        "zero width",
			yamlContent: "width: 0\n",
			wantErr:     true,
			errContains: "width",
		},
		{
			name:        "threshold out of range",
			yamlContent: "rule:\n  birthAbove: 12\n",
			wantErr:     true,
			errContains: "birthAbove",
		},
		{
			name:        "unknown fill",
			yamlContent: "fill: perlin\n",
			wantErr:     true,
			errContains: "fill",
		},
		{
			name:        "malformed yaml",
			yamlContent: "width: [1, 2\n",
			wantErr:     true,
			errContains: "parse",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cave.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yamlContent), 0o644))

			c, err := LoadConfig(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, c)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
