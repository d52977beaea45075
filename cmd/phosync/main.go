package main

import (
	"context"
	"os"

	"github.com/jonboulle/clockwork"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"phosync/internal/app"
	"phosync/internal/config"
	"phosync/internal/domain"
	apperrors "phosync/internal/errors"
	"phosync/internal/infra/mount"
	"phosync/internal/infra/rsync"
	"phosync/internal/presentation"
)

// verboseLogKey enables Debug diagnostics on stderr when set to "true".
const verboseLogKey = "PHOSYNC_LOG_VERBOSE"

func main() {
	if os.Getenv(verboseLogKey) == "true" {
		log.SetLevel(log.DebugLevel)
	}

	if err := newRootCommand().Execute(); err != nil {
		presentation.ErrorNotice(os.Stderr, apperrors.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts domain.RunOptions
	var configPath string

	cmd := &cobra.Command{
		Use:          "phosync",
		Short:        "Mirror the photo library and catalogs to the backup volume.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,

		// main prints the error, so silence cobra's own copy to avoid
		// double printing.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Year, "year", "y", "", "Limit the photo sync to a single year subdirectory")
	flags.BoolVarP(&opts.DryRun, "dry-run", "d", false, "Preview changes without touching the destination")
	flags.BoolVar(&opts.SkipCatalog, "no-catalog", false, "Skip the catalog directories")
	flags.StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file")
	return cmd
}

func run(ctx context.Context, configPath string, opts domain.RunOptions) error {
	fs := afero.NewOsFs()

	path, err := homedir.Expand(configPath)
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "expand config path", configPath, err)
	}

	cfg, err := config.Load(fs, path)
	if err != nil {
		return err
	}
	log.Debugf("Loaded configuration from %s", path)

	if err := mount.Check(cfg.DestRoot); err != nil {
		return err
	}

	runner := &app.Runner{
		FS:      fs,
		Invoker: rsync.ExecInvoker{},
		Clock:   clockwork.NewRealClock(),
		Console: os.Stdout,
		Tool:    rsync.Resolve(fs, cfg.RsyncPath),
		Config:  cfg,
		Options: opts,
	}
	return runner.Run(ctx)
}
