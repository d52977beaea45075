package logging

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newRunLog() (*RunLog, afero.Fs) {
	fs := afero.NewMemMapFs()
	return &RunLog{FS: fs, Clock: clockwork.NewFakeClockAt(testNow)}, fs
}

func TestOpenCreatesTimestampedFile(t *testing.T) {
	runLog, fs := newRunLog()
	require.NoError(t, runLog.Open("/logs", "2020"))
	defer runLog.Close()

	assert.Equal(t, "/logs/sync_log_2020_2024-06-15_103000.log", runLog.Path())
	exists, err := afero.Exists(fs, runLog.Path())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTeeWritesConsoleAndFile(t *testing.T) {
	runLog, fs := newRunLog()
	require.NoError(t, runLog.Open("/logs", "all"))

	var console bytes.Buffer
	_, err := runLog.Tee(&console).Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, runLog.Close())

	assert.Equal(t, "hello\n", console.String())
	contents, err := afero.ReadFile(fs, runLog.Path())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(contents))
}

func TestTeeBeforeOpenPassesThrough(t *testing.T) {
	runLog, _ := newRunLog()
	var console bytes.Buffer
	_, err := runLog.Tee(&console).Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", console.String())
}

func TestOpenPrunesOldLogs(t *testing.T) {
	runLog, fs := newRunLog()

	oldPath := filepath.Join("/logs", "sync_log_all_2024-01-01_000000.log")
	freshPath := filepath.Join("/logs", "sync_log_2019_2024-06-01_000000.log")
	otherPath := filepath.Join("/logs", "notes.txt")
	for _, path := range []string{oldPath, freshPath, otherPath} {
		require.NoError(t, afero.WriteFile(fs, path, []byte("old"), 0o644))
	}
	require.NoError(t, fs.Chtimes(oldPath, testNow, testNow.Add(-45*24*time.Hour)))
	require.NoError(t, fs.Chtimes(freshPath, testNow, testNow.Add(-14*24*time.Hour)))
	require.NoError(t, fs.Chtimes(otherPath, testNow, testNow.Add(-365*24*time.Hour)))

	require.NoError(t, runLog.Open("/logs", "all"))
	defer runLog.Close()

	for path, expExists := range map[string]bool{
		oldPath:   false,
		freshPath: true,
		// Pruning only touches files matching the log naming scheme.
		otherPath: true,
	} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.Equal(t, expExists, exists, path)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	runLog, _ := newRunLog()
	require.NoError(t, runLog.Open("/logs", "all"))
	require.NoError(t, runLog.Close())
	require.NoError(t, runLog.Close())
}
