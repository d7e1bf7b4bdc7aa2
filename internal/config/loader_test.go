package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")

		content := `
catalog:
  owner: acme-templates
  apiURL: https://ghe.example.com/api/v3/
  perPage: 50
clone:
  method: git
  depth: 0
cleanup:
  lockfiles:
    - yarn.lock
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "acme-templates", cfg.Catalog.Owner)
		assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.Catalog.APIURL)
		assert.Equal(t, 50, cfg.Catalog.PerPage)
		assert.Equal(t, CloneMethodGit, cfg.Clone.Method)
		assert.Equal(t, []string{"yarn.lock"}, cfg.Cleanup.Lockfiles)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Catalog.Owner)
		assert.Empty(t, cfg.Clone.Method)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("STARTER_OWNER", "env-owner")
		t.Setenv("STARTER_CLONE_METHOD", "git")
		t.Setenv("STARTER_GITHUB_TOKEN", "secret")

		configFile := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env-owner", cfg.Catalog.Owner)
		assert.Equal(t, "git", cfg.Clone.Method)
		assert.Equal(t, "secret", cfg.Catalog.Token)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("STARTER_OWNER", "env-owner")

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("catalog:\n  owner: file-owner\n"), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env-owner", cfg.Catalog.Owner)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("catalog: [unclosed"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("clone:\n  method: git\n"), 0o644))

	cfg, err := NewLoader().LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, DefaultOwner, cfg.Catalog.Owner)
	assert.Equal(t, DefaultPerPage, cfg.Catalog.PerPage)
	assert.Equal(t, CloneMethodGit, cfg.Clone.Method)
	assert.Equal(t, DefaultLockfiles, cfg.Cleanup.Lockfiles)
}
