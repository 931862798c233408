package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restcall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default: staging
profiles:
  staging:
    baseUri: https://staging.example.com/api
    headers:
      X-Api-Key: sekrit
  prod:
    baseUri: https://example.com/api
`), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	p, err := cfg.profile("")
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/api", p.BaseURI)
	assert.Equal(t, "sekrit", p.Headers["X-Api-Key"])

	p, err = cfg.profile("prod")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api", p.BaseURI)

	_, err = cfg.profile("nope")
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	p, err := cfg.profile("")
	require.NoError(t, err)
	assert.Empty(t, p.BaseURI)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restcall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: ["), 0o600))
	_, err := loadConfig(path)
	assert.Error(t, err)
}
