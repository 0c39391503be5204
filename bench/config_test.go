package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	src := `# small run
max-elements 2000
step 500
key-length 12
load-factor 0.75
hit-ratio 0.5
seed 42
clock wall
hash siphash
baseline yes
entry-limit 10000
unknown-key whatever
`
	cfg, err := ParseConfig(strings.NewReader(src))
	require.NoError(t, err)
	want := Config{
		MaxElements: 2000,
		Step:        500,
		KeyLength:   12,
		LoadFactor:  0.75,
		HitRatio:    0.5,
		MaxValue:    100000,
		Seed:        42,
		Clock:       ClockWall,
		Hash:        HashSipHash,
		Baseline:    true,
		EntryLimit:  10000,
	}
	require.Equal(t, want, cfg)
	require.NoError(t, cfg.Validate())
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader("\n# nothing here\n"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestParseConfigBadNumber(t *testing.T) {
	_, err := ParseConfig(strings.NewReader("step many\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ParseConfig(strings.NewReader("load-factor half\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bench.conf")
	require.NoError(t, os.WriteFile(name, []byte("max-elements 10\nstep 5\n"), 0o644))
	cfg, err := LoadConfig(name)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.MaxElements)
	require.Equal(t, 5, cfg.Step)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.conf"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"max":   func(c *Config) { c.MaxElements = 0 },
		"step":  func(c *Config) { c.Step = -1 },
		"key":   func(c *Config) { c.KeyLength = 0 },
		"load":  func(c *Config) { c.LoadFactor = 0 },
		"hit":   func(c *Config) { c.HitRatio = 1.5 },
		"value": func(c *Config) { c.MaxValue = 0 },
		"clock": func(c *Config) { c.Clock = "sundial" },
		"hash":  func(c *Config) { c.Hash = "md5" },
		"limit": func(c *Config) { c.EntryLimit = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
