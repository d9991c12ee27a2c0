package envloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadEnvFile(t *testing.T) {
	path := writeEnv(t, "# comment\nDRSCAFFOLD_MAIN_DIR=\"./backend\"\nOTHER=value\n")

	envMap, err := LoadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"DRSCAFFOLD_MAIN_DIR": "./backend",
		"OTHER":               "value",
	}, envMap)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	envMap, err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, envMap)
}

func TestLoad(t *testing.T) {
	unsetEnv(t, MainDirEnv)
	path := writeEnv(t, "DRSCAFFOLD_MAIN_DIR=./from-env-file\n")

	require.NoError(t, Load(path))
	assert.Equal(t, "./from-env-file", MainDir("./"))
}

func TestLoad_KeepsExisting(t *testing.T) {
	t.Setenv(MainDirEnv, "./from-shell")
	path := writeEnv(t, "DRSCAFFOLD_MAIN_DIR=./from-env-file\n")

	require.NoError(t, Load(path))
	assert.Equal(t, "./from-shell", MainDir("./"))
}

func TestLoad_Missing(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}

func TestMainDir(t *testing.T) {
	unsetEnv(t, MainDirEnv)
	assert.Equal(t, "./config", MainDir("./config"))

	t.Setenv(MainDirEnv, "  ")
	assert.Equal(t, "./config", MainDir("./config"))

	t.Setenv(MainDirEnv, "/srv/app")
	assert.Equal(t, "/srv/app", MainDir("./config"))
}
