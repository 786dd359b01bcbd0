package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/fsearch/internal/config"
	"github.com/harrison/fsearch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.FileName)

	stdout, _, err := execute(t, "init-config", path)
	require.NoError(t, err)
	assert.Equal(t, "Wrote default configuration to "+path+"\n", stdout)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err), "lock file should be removed")
}

func TestInitConfig_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("mode: full\n"), 0644))

	_, _, err := execute(t, "init-config", path)
	require.Error(t, err)

	var argErr *models.ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "force", argErr.Flag)
	assert.Equal(t, models.ExitUsageError, models.ExitCode(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mode: full\n", string(data))
}

func TestInitConfig_Force(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("mode: full\n"), 0644))

	_, _, err := execute(t, "init-config", "--force", path)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "simple", cfg.Mode)
}

func TestInitConfig_OutputUsableBySearch(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), config.FileName)
	_, _, err := execute(t, "init-config", configPath)
	require.NoError(t, err)

	dir := writeTree(t, map[string]string{"f.txt": "hello\n"})
	stdout, _, err := execute(t, "--config", configPath, "-d", dir, "hello")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 files scanned, 1 with matches")
}

func TestInitConfig_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, "init-config", "a.yaml", "b.yaml")
	require.Error(t, err)
}
