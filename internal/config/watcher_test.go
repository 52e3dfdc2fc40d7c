package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherInvalidatesOnFileChange(t *testing.T) {
	dir := t.TempDir()
	globalPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(globalPath, []byte(`{"theme": "dark"}`), 0o644))

	r := New(WithGlobalPath(globalPath), WithProjectDir(dir))
	cfg, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)

	w, err := Watch(r)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(globalPath, []byte(`{"theme": "light"}`), 0o644))

	assert.Eventually(t, func() bool {
		cfg, err := r.Get()
		return err == nil && cfg.Theme == "light"
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatcherSurvivesMissingProjectDir(t *testing.T) {
	dir := t.TempDir()
	r := New(
		WithGlobalPath(filepath.Join(dir, "config.json")),
		WithProjectDir(filepath.Join(dir, "does-not-exist")),
	)
	w, err := Watch(r)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
