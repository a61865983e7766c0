package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcikl/jcikl-member-app-sub001/window"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
	assert.Equal(t, 5, cfg.List.OverscanCount)
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := NewDefaultConfig()
	want.Theme = "light"
	want.List.ItemSize = 2
	want.List.OverscanCount = 8
	want.List.Height = 30
	want.Data.Count = 42

	require.NoError(t, Save(dir, want))
	assert.FileExists(t, Path(dir))

	got, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_ExplicitFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("list:\n  item_size: 3\n"), 0o644))

	cfg, err := Load("", file)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.List.ItemSize)
	assert.Equal(t, 5, cfg.List.OverscanCount, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := NewDefaultConfig()
	cfg.List.OverscanCount = 2
	require.NoError(t, Save(dir, cfg))

	t.Setenv("VLIST_LIST_OVERSCAN_COUNT", "9")
	got, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, 9, got.List.OverscanCount)
}

func TestLoad_InvalidItemSize(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("list:\n  item_size: 0\n"), 0o644))

	_, err := Load("", file)
	var cfgErr *window.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "itemSize", cfgErr.Field)
}

func TestLoad_MalformedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(file, []byte("list: [unterminated\n"), 0o644))

	_, err := Load("", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestValidate_Negatives(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.List.OverscanCount = -1
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.List.Height = -3
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.Data.Count = -3
	assert.Error(t, cfg.Validate())
}
