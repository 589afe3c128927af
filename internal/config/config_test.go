package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `
store:
  driver: sqlite
  sqlite_path: /tmp/r.db
render:
  date_style: month_name
notify:
  duration: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	t.Setenv("APP_PORT", "9090")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "/tmp/r.db", cfg.Store.SQLitePath)
	assert.Equal(t, "resume-data", cfg.Store.Key)
	assert.Equal(t, "month_name", cfg.Render.DateStyle)
	assert.Equal(t, 5*time.Second, cfg.Notify.Duration)
	assert.Equal(t, 3, cfg.Export.Attempts)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
