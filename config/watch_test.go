package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity: 20\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)
	defer w.Close()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("gravity: 40\n"), 0o644))

	select {
	case got := <-w.Updates:
		assert.Equal(t, 40.0, got.Gravity)
	case err := <-w.Errors:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for tuning reload")
	}
}

func TestWatcherReportsBadTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.toml")
	require.NoError(t, os.WriteFile(path, []byte("gravity = 20.0\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("gravity = -5.0\n"), 0o644))

	select {
	case err := <-w.Errors:
		assert.ErrorIs(t, err, ErrInvalidTuning)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for tuning error")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatchTuningRejectsUnknownFormat(t *testing.T) {
	_, err := WatchTuning(filepath.Join(t.TempDir(), "tuning.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
