// File: watch_test.go
// Title: Configuration Watching Tests
// Description: Tests for fsnotify based reloading, error reporting and
//              watcher shutdown without leaked goroutines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	mdwerror "github.com/msto63/strutil/foundation/core/error"
)

// replaceFile swaps content in by rename so the watcher never sees a truncated file
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatchReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "strutil.toml")
	require.NoError(t, os.WriteFile(path, []byte("[encode]\npolicy = \"component\"\n"), 0o644))

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: testPrefix, Defaults: Defaults()})
	require.NoError(t, err)

	var mu sync.Mutex
	var seen string
	cfg.OnChange(func(_, newCfg *Config) {
		mu.Lock()
		defer mu.Unlock()
		seen = newCfg.GetString(KeyEncodePolicy)
	})

	require.NoError(t, cfg.Watch())
	assert.True(t, cfg.IsWatching())
	require.NoError(t, cfg.Watch(), "second Watch is a no-op")

	replaceFile(t, path, "[encode]\npolicy = \"all\"\n")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen == "all"
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, "all", cfg.GetString(KeyEncodePolicy))
	assert.Equal(t, "warn", cfg.GetString(KeyLogLevel), "defaults are reapplied on reload")

	require.NoError(t, cfg.StopWatching())
	assert.False(t, cfg.IsWatching())
	require.NoError(t, cfg.StopWatching(), "stopping twice is harmless")
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "strutil.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	cfg, err := LoadWithOptions(path, LoadOptions{})
	require.NoError(t, err)

	var mu sync.Mutex
	calls := 0
	cfg.OnChange(func(_, _ *Config) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	require.NoError(t, cfg.Watch())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("a = 2\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, cfg.StopWatching())

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
	assert.Equal(t, 1, cfg.GetInt("a"))
}

func TestWatchReportsReloadErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "strutil.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	cfg, err := LoadWithOptions(path, LoadOptions{Watch: true})
	require.NoError(t, err)
	defer cfg.StopWatching()

	errs := make(chan error, 16)
	cfg.OnError(func(err error) {
		select {
		case errs <- err:
		default:
		}
	})

	replaceFile(t, path, "[[[ not toml")

	select {
	case err := <-errs:
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig), "got %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload error reported")
	}

	assert.Equal(t, 1, cfg.GetInt("a"), "a failed reload keeps the previous data")
}

func TestWatchRequiresFile(t *testing.T) {
	cfg := New(LoadOptions{Defaults: Defaults()})
	err := cfg.Watch()
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))
	assert.False(t, cfg.IsWatching())
	assert.NoError(t, cfg.StopWatching())
}
