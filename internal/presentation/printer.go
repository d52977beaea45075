package presentation

import (
	"fmt"
	"io"
	"time"

	"phosync/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Printer narrates a run. Writer is the tee stream captured into the
// log file, so everything written here stays plain text.
type Printer struct {
	Writer io.Writer
}

func (p Printer) Header(tool, dest string, opts domain.RunOptions, start time.Time) {
	fmt.Fprintln(p.Writer, "=== phosync run ===")
	fmt.Fprintf(p.Writer, "Tool:        %s\n", tool)
	fmt.Fprintf(p.Writer, "Destination: %s\n", dest)
	fmt.Fprintln(p.Writer, "Deletions on the destination are enabled.")
	if opts.SkipCatalog {
		fmt.Fprintln(p.Writer, "Catalog sync is disabled for this run.")
	}
	if opts.DryRun {
		fmt.Fprintln(p.Writer, "DRY RUN: no files will be changed.")
	} else {
		fmt.Fprintln(p.Writer, "LIVE RUN: the destination will be modified.")
	}
	fmt.Fprintf(p.Writer, "Started at %s\n", start.Format(timeLayout))
	fmt.Fprintln(p.Writer)
}

func (p Printer) Syncing(job domain.FolderSyncJob) {
	fmt.Fprintf(p.Writer, "--- Syncing %s ---\n", job.Label)
	fmt.Fprintf(p.Writer, "%s -> %s\n", job.Source, job.Dest)
}

func (p Printer) SkipMissing(job domain.FolderSyncJob) {
	fmt.Fprintf(p.Writer, "Warning: skipping %s, source %s does not exist.\n", job.Label, job.Source)
}

func (p Printer) CatalogsSkipped() {
	fmt.Fprintln(p.Writer, "Catalog sync skipped (--no-catalog).")
}

func (p Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.Writer, "Warning: "+format+"\n", args...)
}

func (p Printer) Summary(logPath string, end time.Time) {
	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Log written to %s\n", logPath)
	fmt.Fprintf(p.Writer, "Finished at %s\n", end.Format(timeLayout))
}
