package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/renquan87/codemerge/internal/config"
	"github.com/renquan87/codemerge/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "App.vue"), []byte("<template/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("notes"), 0644))

	cfg := config.Default()
	cfg.RootDir = root
	cfg.OutputFile = filepath.Join(t.TempDir(), "frontend_code.txt")
	return cfg
}

func TestRunReportsStartAndCompletion(t *testing.T) {
	cfg := newConfig(t)
	var stderr bytes.Buffer

	a, err := New(cfg, &stderr)
	require.NoError(t, err)
	require.NoError(t, a.Run())
	require.NoError(t, a.Close())

	log := stderr.String()
	assert.Contains(t, log, "INFO] Scanning "+cfg.RootDir)
	assert.Contains(t, log, "node_modules")
	assert.Contains(t, log, "Done! Merged 1 files into "+cfg.OutputFile)
	assert.NotContains(t, log, "Skipped Items")

	out, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(out), "File: "+filepath.Join(cfg.RootDir, "App.vue"))
}

func TestRunShowSkipped(t *testing.T) {
	cfg := newConfig(t)
	cfg.ShowSkipped = true
	var stderr bytes.Buffer

	a, err := New(cfg, &stderr)
	require.NoError(t, err)
	require.NoError(t, a.Run())

	assert.Contains(t, stderr.String(), "--- Skipped Items (1) ---")
	assert.Contains(t, stderr.String(), "notes.md")
}

func TestRunQuietHidesInfo(t *testing.T) {
	cfg := newConfig(t)
	cfg.Quiet = true
	var stderr bytes.Buffer

	a, err := New(cfg, &stderr)
	require.NoError(t, err)
	require.NoError(t, a.Run())
	assert.Empty(t, stderr.String())
}

func TestRunFatalErrorIsReturnedNotLogged(t *testing.T) {
	cfg := newConfig(t)
	cfg.RootDir = filepath.Join(cfg.RootDir, "missing")
	var stderr bytes.Buffer

	a, err := New(cfg, &stderr)
	require.NoError(t, err)

	err = a.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "merge failed after 0 files")
	assert.NotContains(t, stderr.String(), "ERROR]")

	_, statErr := os.Stat(cfg.OutputFile)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestNewSelectsLogger(t *testing.T) {
	cfg := newConfig(t)
	cfg.Verbose = true
	a, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	console, ok := a.log.(*logger.Console)
	require.True(t, ok)
	assert.Equal(t, logger.LevelDebug, console.Level())

	cfg.LogJSON = true
	a, err = New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	_, ok = a.log.(*logger.Structured)
	assert.True(t, ok)
}

func TestCloseSyncsStructuredLogger(t *testing.T) {
	a, err := New(newConfig(t), &bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(t, a.Close())

	cfg := newConfig(t)
	cfg.LogJSON = true
	cfg.Quiet = true
	a, err = New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, a.Run())
	assert.NoError(t, a.Close())
}
