package app

import (
	"context"
	"io"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"

	"phosync/internal/config"
	"phosync/internal/domain"
	apperrors "phosync/internal/errors"
	"phosync/internal/logging"
	"phosync/internal/presentation"
)

// Runner sequences one photo sync and zero-or-more catalog syncs under
// a single tee-captured log. Fully sequential; each job is best-effort
// and a failed job never aborts the ones after it.
type Runner struct {
	FS      afero.Fs
	Invoker Invoker
	Clock   clockwork.Clock
	Console io.Writer

	Tool    string
	Config  config.Config
	Options domain.RunOptions
}

func (r *Runner) Run(ctx context.Context) error {
	scope := r.Options.Year
	if scope == "" {
		scope = "all"
	}

	runLog := &logging.RunLog{FS: r.FS, Clock: r.Clock}
	if err := runLog.Open(r.Config.LogDir, scope); err != nil {
		return apperrors.Wrap(apperrors.IOFailure, "open log", r.Config.LogDir, err)
	}
	defer runLog.Close()

	out := runLog.Tee(r.Console)
	printer := presentation.Printer{Writer: out}

	printer.Header(r.Tool, r.Config.DestRoot, r.Options, r.Clock.Now())

	r.syncFolder(ctx, out, printer, r.photoJob())

	if r.Options.SkipCatalog {
		printer.CatalogsSkipped()
	} else {
		for _, pair := range r.Config.Catalogs {
			if pair.Source == "" || pair.Dest == "" {
				printer.Warnf("skipping malformed catalog pair %q", pair.Source+":"+pair.Dest)
				continue
			}
			r.syncFolder(ctx, out, printer, domain.FolderSyncJob{
				Source: pair.Source,
				Dest:   pair.Dest,
				Label:  filepath.Base(pair.Source),
			})
		}
	}

	printer.Summary(runLog.Path(), r.Clock.Now())

	// Everything past this point is console-only, not captured.
	if err := runLog.Close(); err != nil {
		return apperrors.Wrap(apperrors.IOFailure, "close log", runLog.Path(), err)
	}
	presentation.ConsoleNotice(r.Console, "Backup run finished. Log: "+runLog.Path())
	return nil
}

// photoJob scopes the photo sync to a single year subdirectory when a
// year filter is set, or the whole photos tree otherwise.
func (r *Runner) photoJob() domain.FolderSyncJob {
	src := filepath.Join(r.Config.SourceRoot, "photos")
	dst := filepath.Join(r.Config.DestRoot, "photos")
	label := "photos"
	if r.Options.Year != "" {
		src = filepath.Join(src, r.Options.Year)
		dst = filepath.Join(dst, r.Options.Year)
		label = "photos/" + r.Options.Year
	}
	return domain.FolderSyncJob{Source: src, Dest: dst, Label: label}
}

// syncFolder invokes the mirroring tool for one job. A missing source
// is a skip, not a failure; a nonzero tool exit is downgraded to a
// logged warning.
func (r *Runner) syncFolder(ctx context.Context, out io.Writer, printer presentation.Printer, job domain.FolderSyncJob) {
	if isDir, err := afero.IsDir(r.FS, job.Source); err != nil || !isDir {
		printer.SkipMissing(job)
		return
	}

	printer.Syncing(job)
	if err := r.Invoker.Run(ctx, r.Tool, mirrorArgs(job, r.Options.DryRun), out); err != nil {
		printer.Warnf("%s sync exited with an error: %v", job.Label, err)
	}
}
