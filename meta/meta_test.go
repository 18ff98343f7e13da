package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv(envMatches, "4")
	t.Setenv(envEpisodes, "30")
	t.Setenv(envGoroutines, "2")
	t.Setenv(envExploration, "0.5")
	t.Setenv(envSeed, "42")
	t.Setenv(envLogLevel, "debug")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, c.Matches)
	assert.Equal(t, 30, c.Episodes)
	assert.Equal(t, 2, c.Goroutines)
	assert.InDelta(t, 0.5, c.Exploration, 1e-9)
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCHNAPSEN_DB_PATH=from-file.db\nSCHNAPSEN_OUTPUT_DIR=from-file\n"), 0o644))
	t.Setenv(envOutputDir, "from-env")
	t.Cleanup(func() { os.Unsetenv(envDBPath) })

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", c.DBPath)
	assert.Equal(t, "from-env", c.OutputDir, "environment wins over the file")
}

func TestLoadInvalid(t *testing.T) {
	for key, value := range map[string]string{
		envMatches:     "zero",
		envEpisodes:    "-1",
		envExploration: "-2",
		envSeed:        "x",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load("")
			require.Error(t, err)
		})
	}
}
