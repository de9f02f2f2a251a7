package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New("game-entities")

	assert.Equal(t, "game-entities", cfg.Name)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Encoding)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Positive(t, cfg.Simulation.Iterations)
	assert.Positive(t, cfg.Simulation.MaxHeld)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(c *Config) { c.Name = "" },
			wantErr: "name is required",
		},
		{
			name: "unnamed template",
			mutate: func(c *Config) {
				c.Templates = []TemplateConfig{{Name: "", Prewarm: 1}}
			},
			wantErr: "template name is required",
		},
		{
			name: "duplicate template",
			mutate: func(c *Config) {
				c.Templates = []TemplateConfig{{Name: "enemy"}, {Name: "enemy"}}
			},
			wantErr: "duplicate template",
		},
		{
			name: "negative prewarm",
			mutate: func(c *Config) {
				c.Templates = []TemplateConfig{{Name: "enemy", Prewarm: -1}}
			},
			wantErr: "prewarm cannot be negative",
		},
		{
			name:    "negative iterations",
			mutate:  func(c *Config) { c.Simulation.Iterations = -1 },
			wantErr: "iterations cannot be negative",
		},
		{
			name:    "zero max held",
			mutate:  func(c *Config) { c.Simulation.MaxHeld = 0 },
			wantErr: "max_held must be positive",
		},
		{
			name: "metrics without listen address",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.Listen = ""
			},
			wantErr: "listen address is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New("pool")
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTemplateLookup(t *testing.T) {
	cfg := New("pool")
	cfg.Templates = []TemplateConfig{
		{Name: "enemy", Prewarm: 8},
		{Name: "bullet", Prewarm: 32},
	}

	tc, ok := cfg.Template("bullet")
	require.True(t, ok)
	assert.Equal(t, 32, tc.Prewarm)

	_, ok = cfg.Template("pickup")
	assert.False(t, ok)
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("POOL_NAME", "from-env")

	path := filepath.Join(t.TempDir(), "pool.yaml")
	raw := `
name: ${POOL_NAME}
templates:
  - name: enemy
    prewarm: 8
  - name: bullet
    prewarm: 32
logging:
  level: debug
metrics:
  enabled: true
  listen: ":9190"
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg := New("default")
	require.NoError(t, Load(path, cfg))

	assert.Equal(t, "from-env", cfg.Name)
	require.Len(t, cfg.Templates, 2)
	assert.Equal(t, 8, cfg.Templates[0].Prewarm)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg := New("pool")
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")

	cfg := New("round-trip")
	cfg.Templates = []TemplateConfig{{Name: "enemy", Prewarm: 4}}
	require.NoError(t, Save(path, cfg))

	loaded := New("other")
	require.NoError(t, Load(path, loaded))
	assert.Equal(t, cfg.Name, loaded.Name)
	assert.Equal(t, cfg.Templates, loaded.Templates)
}
