package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/backup"
	"github.com/blackwell-systems/avex/internal/catalog"
)

func newRestoreCmd() *cobra.Command {
	var (
		latest      bool
		skipConfirm bool
	)

	cmd := &cobra.Command{
		Use:   "restore [snapshot|archive|folder]",
		Short: "Replace the catalog with a backup",
		Long: `Replace the catalog with the contents of a snapshot folder, a .zip
archive, or a data folder (YAML, SQLite or the legacy JSON layout).
The current data is snapshotted first.

Examples:
  avex restore --latest
  avex restore ~/.local/share/avex/backup/2026-03-04-05-06-07.zip
  avex restore /mnt/old-pc/Datas`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src string
			switch {
			case len(args) == 1:
				src = absPath(args[0])
			case latest:
				snaps, err := backup.Snapshots(cfg.EffectiveBackupDir())
				if err != nil {
					return err
				}
				if len(snaps) == 0 {
					return fmt.Errorf("no snapshots in %s", cfg.EffectiveBackupDir())
				}
				src = snaps[0]
			default:
				return fmt.Errorf("provide a path or --latest")
			}

			restored, err := backup.Load(src)
			if err != nil {
				return err
			}
			if !skipConfirm && !confirm(fmt.Sprintf("Replace the catalog with %d item(s) from %s?", restored.Len(), src), false) {
				fmt.Println("Cancelled.")
				return nil
			}
			return replaceCatalog(restored)
		},
	}

	cmd.Flags().BoolVar(&latest, "latest", false, "Restore the newest automatic snapshot")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// replaceCatalog snapshots the current data and swaps in restored.
func replaceCatalog(restored *catalog.Store) error {
	if res, err := snapshot(cfg.EffectiveBackupDir()); err == nil {
		if !res.Unchanged {
			ok("Previous data saved to %s", res.Path)
		}
	} else {
		warn("Could not snapshot current data: %v", err)
	}
	if err := session.Restore(restored.Items(), restored.Groups(), restored.CustomCategories()); err != nil {
		return err
	}
	ok("Restored %d item(s)", restored.Len())
	return nil
}
