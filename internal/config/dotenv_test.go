package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDotEnv_Priority(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".env.local", "DOTENV_TEST_A=local\n")
	writeFile(t, dir, ".env", "DOTENV_TEST_A=base\nDOTENV_TEST_B=base\n")
	t.Setenv("DOTENV_TEST_A", "")
	os.Unsetenv("DOTENV_TEST_A")
	t.Setenv("DOTENV_TEST_B", "")
	os.Unsetenv("DOTENV_TEST_B")

	loaded, err := LoadDotEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{".env.local", ".env"}, loaded)
	assert.Equal(t, "local", os.Getenv("DOTENV_TEST_A"))
	assert.Equal(t, "base", os.Getenv("DOTENV_TEST_B"))
}

func TestLoadDotEnv_OSWins(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".env", "DOTENV_TEST_C=file\n")
	t.Setenv("DOTENV_TEST_C", "os")

	_, err := LoadDotEnv()
	require.NoError(t, err)
	assert.Equal(t, "os", os.Getenv("DOTENV_TEST_C"))
}

func TestLoadDotEnv_Malformed(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".env", "DOTENV_TEST_D=\"unterminated\n")

	loaded, err := LoadDotEnv()
	assert.ErrorContains(t, err, "load .env")
	assert.Empty(t, loaded)
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	chdir(t, t.TempDir())

	loaded, err := LoadDotEnv()
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}
