package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test; testing.T.Chdir
// needs Go 1.24, which is newer than the local toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir()) // make sure no cronparse.yaml from the cwd leaks in

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cronparse", cfg.AppName)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 14, cfg.Output.ColumnWidth)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, 5, cfg.Preview.Count)
}

func TestLoad_FromFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	chdir(t, dir)

	content := []byte("log_level: debug\noutput:\n  column_width: 20\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cronparse.yaml"), content, 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.Output.ColumnWidth)
	// untouched keys keep their defaults
	assert.Equal(t, "table", cfg.Output.Format)
}
