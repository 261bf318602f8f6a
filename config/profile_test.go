package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysql/sqlparser/config"
)

func writeProfile(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoadProfileParsesNameAndFlags(t *testing.T) {
	path := writeProfile(t, `
name: strict
description: a minimal capability bundle
flags:
  supports_filter_during_aggregation: true
  supports_in_empty_list: false
`)
	p, err := config.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "strict", p.Name)
	assert.Equal(t, "a minimal capability bundle", p.Description)
	assert.True(t, p.Flags.SupportsFilterDuringAggregation)
	assert.False(t, p.Flags.SupportsInEmptyList)
}

func TestLoadProfileMissingFileErrors(t *testing.T) {
	_, err := config.LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadProfileInvalidYAMLErrors(t *testing.T) {
	path := writeProfile(t, "flags: [this, is, not, a, map]")
	_, err := config.LoadProfile(path)
	assert.Error(t, err)
}

func TestProfileDialectCarriesFlags(t *testing.T) {
	path := writeProfile(t, `
name: custom
flags:
  supports_connect_by: true
`)
	p, err := config.LoadProfile(path)
	require.NoError(t, err)
	d := p.Dialect()
	assert.True(t, d.Flags().SupportsConnectBy)
}
