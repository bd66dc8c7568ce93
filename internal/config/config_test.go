package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "nope.yaml"), dir)
	require.NoError(t, err)
	assert.Equal(t, Default(dir), cfg)
	assert.Equal(t, 4, cfg.View.Months)
	assert.Equal(t, 10000, cfg.Source.TimeoutMs)
	assert.Equal(t, filepath.Join(dir, "phaseline.db"), cfg.Storage.DBPath)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "source:\n  sheet_id: abc123\nview:\n  months: 6\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path, dir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.Source.SheetID)
	assert.Equal(t, 6, cfg.View.Months)
	assert.Equal(t, 10000, cfg.Source.TimeoutMs, "unset keys keep defaults")
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Contains(t, cfg.Sheet().ExportURL(), "/d/abc123/export?format=csv")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view:\n  months: 6\n"), 0644))

	t.Setenv("PHASELINE_VIEW_MONTHS", "3")
	t.Setenv("PHASELINE_SOURCE_FILE", "/tmp/sheet.csv")
	t.Setenv("PHASELINE_DB", "/tmp/p.db")
	t.Setenv("PHASELINE_KEEP_SNAPSHOTS", "2")
	t.Setenv("PHASELINE_FETCH_TIMEOUT_MS", "2500")

	cfg, err := Load(path, dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.View.Months)
	assert.Equal(t, "/tmp/sheet.csv", cfg.Source.File)
	assert.Equal(t, "/tmp/p.db", cfg.Storage.DBPath)
	assert.Equal(t, 2, cfg.Storage.KeepSnapshots)
	assert.Equal(t, 2500, cfg.Sheet().TimeoutMs)
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PHASELINE_VIEW_MONTHS", "lots")
	t.Setenv("PHASELINE_KEEP_SNAPSHOTS", "-1")

	cfg, err := Load(filepath.Join(dir, "config.yaml"), dir)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.View.Months)
	assert.Equal(t, 10, cfg.Storage.KeepSnapshots)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view: [unclosed"), 0644))

	_, err := Load(path, dir)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default(dir)
	cfg.Source.URL = "https://example.com/export.csv"
	cfg.View.Months = 5
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path, dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPath_EnvWins(t *testing.T) {
	t.Setenv("PHASELINE_CONFIG", "")
	assert.Equal(t, filepath.Join("/home/x/.phaseline", "config.yaml"), Path("/home/x/.phaseline"))

	t.Setenv("PHASELINE_CONFIG", "/etc/phaseline.yaml")
	assert.Equal(t, "/etc/phaseline.yaml", Path("/home/x/.phaseline"))
}
