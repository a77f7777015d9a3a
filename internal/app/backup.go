package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/backup"
	"github.com/blackwell-systems/avex/internal/logging"
)

func newBackupCmd() *cobra.Command {
	var (
		archive bool
		watch   bool
		list    bool
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up the catalog data",
		Long: `Take a snapshot of the catalog files into <backup_dir>/auto/<timestamp>/.
A snapshot is skipped when nothing changed since the last one.

With --archive the whole data directory is zipped into
<backup_dir>/<timestamp>.zip instead. With --watch a snapshot is taken
every backup.interval until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.EffectiveBackupDir()
			switch {
			case list:
				snaps, err := backup.Snapshots(dir)
				if err != nil {
					return err
				}
				if len(snaps) == 0 {
					fmt.Println("No snapshots.")
				}
				for _, s := range snaps {
					fmt.Printf("  %s\n", s)
				}
				return nil

			case archive:
				path, err := backup.Archive(cfg.DataDir, dir, time.Now())
				if err != nil {
					return err
				}
				ok("Archived %s to %s", cfg.DataDir, path)
				return nil

			case watch:
				s := newScheduler(dir)
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				header("Backing up every %s, Ctrl+C to stop", s.Interval)
				if err := s.Run(ctx); err != nil && ctx.Err() == nil {
					return err
				}
				fmt.Println(s.Status().Label(session.Language(), time.Now()))
				return nil
			}

			res, err := snapshot(dir)
			if err != nil {
				return err
			}
			if res.Unchanged {
				ok("No changes since %s", res.Path)
				return nil
			}
			ok("Snapshot written to %s", res.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&archive, "archive", false, "Zip the whole data directory")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep taking snapshots every backup.interval")
	cmd.Flags().BoolVar(&list, "list", false, "List snapshots, newest first")
	cmd.MarkFlagsMutuallyExclusive("archive", "watch", "list")
	return cmd
}

func newScheduler(dir string) *backup.Scheduler {
	s := backup.NewScheduler(cfg.DataDir, dir, logging.Component(logger, "backup"))
	s.Interval = cfg.Backup.Interval
	if c, ok := backend.(backup.Checkpointer); ok {
		s.Flush = c
	}
	return s
}

// snapshot flushes the open backend and takes one snapshot.
func snapshot(dir string) (backup.Result, error) {
	if c, ok := backend.(backup.Checkpointer); ok {
		if err := c.Checkpoint(); err != nil {
			return backup.Result{}, err
		}
	}
	return backup.Snapshot(cfg.DataDir, dir, time.Now())
}
