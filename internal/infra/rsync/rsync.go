// Package rsync locates the mirroring binary and shells out to it.
package rsync

import (
	"context"
	"io"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DefaultTool is the bare on-PATH name used when no installation is
// found. It is not validated; a missing binary fails at invocation.
const DefaultTool = "rsync"

// EnvOverride forces a specific binary regardless of configuration.
const EnvOverride = "PHOSYNC_RSYNC"

var wellKnownPaths = []string{
	"/usr/local/bin/rsync",
	"/opt/homebrew/bin/rsync",
	"/usr/bin/rsync",
}

// Resolve picks the rsync binary: environment override first, then the
// config override, then the first existing well-known installation,
// then the bare name.
func Resolve(fs afero.Fs, configOverride string) string {
	if path := os.Getenv(EnvOverride); path != "" {
		log.Debugf("Using rsync from %s: %s", EnvOverride, path)
		return path
	}
	if configOverride != "" {
		return configOverride
	}
	for _, path := range wellKnownPaths {
		if ok, err := afero.Exists(fs, path); err == nil && ok {
			return path
		}
	}
	return DefaultTool
}

// ExecInvoker runs the tool as a child process, streaming combined
// stdout and stderr to out.
type ExecInvoker struct{}

func (ExecInvoker) Run(ctx context.Context, tool string, args []string, out io.Writer) error {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}
