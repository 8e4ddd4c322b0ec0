package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfigFile(t *testing.T, path, level string) {
	t.Helper()
	content := "environment: development\nlogging:\n  level: " + level + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// replaceConfigFile mimics an editor's atomic save: write a temp file in the
// same directory, then rename it over the target.
func replaceConfigFile(t *testing.T, path, level string) {
	t.Helper()
	tmp := path + ".tmp"
	content := "environment: development\nlogging:\n  level: " + level + "\n"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o600))
	require.NoError(t, os.Rename(tmp, path))
}

func newTestWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	watcher, err := NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(watcher.Stop)
	watcher.Start()
	return watcher
}

func TestWatcher_ReloadOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfigFile(t, path, "info")
	watcher := newTestWatcher(t, path)

	reloaded := make(chan string, 4)
	watcher.OnChange(func(c *Config) {
		reloaded <- c.Logging.Level
	})

	writeConfigFile(t, path, "debug")

	require.Eventually(t, func() bool {
		return watcher.Current().Logging.Level == "debug"
	}, 3*time.Second, 20*time.Millisecond)

	select {
	case level := <-reloaded:
		assert.Equal(t, "debug", level)
	case <-time.After(time.Second):
		t.Fatal("reload callback was never invoked")
	}
}

func TestWatcher_InvalidReloadKeepsLastGood(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfigFile(t, path, "info")
	watcher := newTestWatcher(t, path)

	writeConfigFile(t, path, "shouting")

	// Give the debounced reload time to run and fail
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, "info", watcher.Current().Logging.Level)
}

func TestWatcher_SurvivesAtomicReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfigFile(t, path, "info")
	watcher := newTestWatcher(t, path)

	replaceConfigFile(t, path, "debug")
	require.Eventually(t, func() bool {
		return watcher.Current().Logging.Level == "debug"
	}, 3*time.Second, 20*time.Millisecond)

	// A second replace must still be noticed; the watch does not die with
	// the first file's inode
	replaceConfigFile(t, path, "warn")
	require.Eventually(t, func() bool {
		return watcher.Current().Logging.Level == "warn"
	}, 3*time.Second, 20*time.Millisecond)
}
