package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestConfigFileRoundTrip(t *testing.T) {
	cfg := Config{Format: "json", Stats: true, CodesFile: "codes.tsv"}
	out, err := tomlSettings.Marshal(&cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fano.toml")
	require.NoError(t, os.WriteFile(path, out, 0644))

	var got Config
	require.NoError(t, loadConfigFile(path, &got))
	assert.Equal(t, cfg, got)
}

func TestConfigFileUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fano.toml")
	require.NoError(t, os.WriteFile(path, []byte("Formt = \"tsv\"\n"), 0644))

	var cfg Config
	err := loadConfigFile(path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Formt")
}

// testContext builds a cli context with the given command line, as the
// commands would see it.
func testContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range []cli.Flag{formatFlag, statsFlag, codesFlag, configFlag} {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(app, set, nil)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(testContext(t))
	require.NoError(t, err)
	// The default format depends on whether stdout is a terminal.
	assert.Contains(t, []string{"table", "tsv"}, cfg.Format)
	assert.False(t, cfg.Stats)
	assert.Empty(t, cfg.CodesFile)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	cfg, err := loadConfig(testContext(t, "--format", "json", "--stats", "--codes", "ref.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Stats)
	assert.Equal(t, "ref.tsv", cfg.CodesFile)
}

func TestLoadConfigFlagBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fano.toml")
	require.NoError(t, os.WriteFile(path, []byte("Format = \"table\"\nStats = true\n"), 0644))

	cfg, err := loadConfig(testContext(t, "--config", path, "--format", "json"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Stats)
}

func TestLoadConfigRejectsFormat(t *testing.T) {
	_, err := loadConfig(testContext(t, "--format", "xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
