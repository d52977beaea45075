package app

import (
	"strings"

	"phosync/internal/domain"
)

// metadataExcludes are the bookkeeping files desktop file managers drop
// into every directory; never worth mirroring to the backup volume.
var metadataExcludes = []string{
	".DS_Store",
	".AppleDouble",
	"._*",
	".Spotlight-V100",
	".Trashes",
	".fseventsd",
	".TemporaryItems",
}

// mirrorArgs builds the fixed rsync argument list for one job. The
// option set is deliberately not configurable: --size-only because the
// NAS does not preserve timestamps faithfully, --delete to mirror
// removals, --inplace so interrupted large transfers resume instead of
// restarting.
func mirrorArgs(job domain.FolderSyncJob, dryRun bool) []string {
	args := []string{"-avh"}
	if dryRun {
		args = append(args, "-n")
	}
	args = append(args,
		"--size-only",
		"--delete",
		"--inplace",
		"--progress",
		"--stats",
	)
	for _, pattern := range metadataExcludes {
		args = append(args, "--exclude", pattern)
	}
	return append(args, withTrailingSlash(job.Source), withTrailingSlash(job.Dest))
}

// withTrailingSlash normalizes to exactly one trailing separator, so
// rsync treats the source as "contents of this directory".
func withTrailingSlash(path string) string {
	return strings.TrimRight(path, "/") + "/"
}
