//go:build linux || darwin

// Package mount guards against the one failure that silently ruins a
// backup run: a destination directory that is really an unmounted
// mount point on the local disk.
package mount

import (
	"errors"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	apperrors "phosync/internal/errors"
)

// Check reports nil when dest looks like it lives on a mounted volume.
//
// dest passes when it is an existing directory that either appears in
// the mount table itself or sits on a different device than the root
// filesystem. This is a best-effort heuristic: a bind or loop mount
// sharing the root device is reported as unmounted.
func Check(dest string) error {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return apperrors.Wrap(apperrors.UnmountedDestination, "mount check", dest, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return apperrors.Wrap(apperrors.UnmountedDestination, "mount check", dest,
			errors.New("not an existing directory"))
	}

	if points, err := listMountPoints(); err == nil {
		for _, point := range points {
			if point == abs && point != "/" {
				return nil
			}
		}
	} else {
		log.WithError(err).Debug("Failed to read the mount table; falling back to device comparison")
	}

	var destStat, rootStat unix.Stat_t
	if err := unix.Stat(abs, &destStat); err != nil {
		return apperrors.Wrap(apperrors.UnmountedDestination, "mount check", dest, err)
	}
	if err := unix.Stat("/", &rootStat); err != nil {
		return apperrors.Wrap(apperrors.UnmountedDestination, "mount check", dest, err)
	}
	if destStat.Dev == rootStat.Dev {
		return apperrors.Wrap(apperrors.UnmountedDestination, "mount check", dest,
			errors.New("destination resolves to the root filesystem"))
	}
	return nil
}
