package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeHome(dir string) Option {
	return WithHomeDir(func() (string, error) { return dir, nil })
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, path, err := Load(fakeHome(home), WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".rolemix", "config.yaml"), path)
	assert.Equal(t, filepath.Join(home, ".rolemix", "rolemix.db"), cfg.DBPath)
	assert.Equal(t, "natural-roles-profiles", cfg.StorageKey)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "off", cfg.Log)
	assert.False(t, cfg.Ephemeral)
}

func TestLoad_FileThenEnv(t *testing.T) {
	home := t.TempDir()
	cfgPath := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("db_path: /tmp/from-file.db\nseed: 7\nlog: dev\n"), 0o644))

	cfg, path, err := Load(fakeHome(home), WithEnvironment(map[string]string{
		"ROLEMIX_CONFIG":    cfgPath,
		"ROLEMIX_SEED":      "99",
		"ROLEMIX_EPHEMERAL": "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, cfgPath, path)
	assert.Equal(t, "/tmp/from-file.db", cfg.DBPath)
	assert.Equal(t, uint64(99), cfg.Seed, "env overrides file")
	assert.Equal(t, "dev", cfg.Log)
	assert.True(t, cfg.Ephemeral)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("ROLEMIX_DB", ":memory:")
	t.Setenv("ROLEMIX_STORAGE_KEY", "alt-key")

	cfg, _, err := Load(fakeHome(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, "alt-key", cfg.StorageKey)
}

func TestLoad_BadYAML(t *testing.T) {
	home := t.TempDir()
	cfgPath := filepath.Join(home, "broken.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed: [oops"), 0o644))

	_, _, err := Load(fakeHome(home), WithConfigPath(cfgPath), WithEnvironment(map[string]string{}))
	assert.ErrorContains(t, err, "parse config file")
}

func TestLoad_BadEnv(t *testing.T) {
	_, _, err := Load(fakeHome(t.TempDir()), WithEnvironment(map[string]string{"ROLEMIX_SEED": "soon"}))
	assert.ErrorContains(t, err, "parse env:")
}

func TestLoad_BadLogMode(t *testing.T) {
	_, _, err := Load(fakeHome(t.TempDir()), WithEnvironment(map[string]string{"ROLEMIX_LOG": "loud"}))
	assert.ErrorContains(t, err, "log must be")
}
