// Package logging owns the per-run log file: creation, the tee writer
// that mirrors run output into it, and retention of old logs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	filePrefix = "sync_log_"
	fileSuffix = ".log"
	timeLayout = "2006-01-02_150405"
)

// RetainFor is how long run logs are kept before being pruned.
const RetainFor = 30 * 24 * time.Hour

// RunLog manages a single run's log file.
type RunLog struct {
	FS    afero.Fs
	Clock clockwork.Clock

	path string
	file afero.File
}

// Open expands a leading ~ in dir, creates the directory if absent,
// prunes logs older than RetainFor, and creates a fresh timestamped
// log file. scope is the year filter, or "all" for a full run.
func (l *RunLog) Open(dir, scope string) error {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return err
	}
	if err := l.FS.MkdirAll(expanded, 0o755); err != nil {
		return err
	}
	l.prune(expanded)

	name := fmt.Sprintf("%s%s_%s%s", filePrefix, scope, l.Clock.Now().Format(timeLayout), fileSuffix)
	l.path = filepath.Join(expanded, name)

	file, err := l.FS.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	l.file = file
	return nil
}

func (l *RunLog) prune(dir string) {
	infos, err := afero.ReadDir(l.FS, dir)
	if err != nil {
		log.WithError(err).Warnf("Failed to list %s for log pruning", dir)
		return
	}

	cutoff := l.Clock.Now().Add(-RetainFor)
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := l.FS.Remove(filepath.Join(dir, name)); err != nil {
				log.WithError(err).Warnf("Failed to prune old log %s", name)
			}
		}
	}
}

// Path returns the log file location. Empty before Open.
func (l *RunLog) Path() string {
	return l.path
}

// Tee returns a writer that duplicates writes to console and the log
// file. Before Open (or after Close) it passes through to console.
func (l *RunLog) Tee(console io.Writer) io.Writer {
	if l.file == nil {
		return console
	}
	return io.MultiWriter(console, l.file)
}

// Close is idempotent.
func (l *RunLog) Close() error {
	if l.file == nil {
		return nil
	}
	file := l.file
	l.file = nil
	return file.Close()
}
