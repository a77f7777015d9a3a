package app

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/backup"
	"github.com/blackwell-systems/avex/internal/catalog"
)

func newExportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as CSV",
		Long: `Write every item to a timestamped CSV file. Supported avatars are
written as names separated by ";".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = cfg.ExportDir()
			}
			items, groups, custom := session.Snapshot()
			path, err := backup.ExportCSV(catalog.NewStore(items, groups, custom), absPath(outDir), time.Now())
			if err != nil {
				return err
			}
			ok("Exported %d item(s) to %s", len(items), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: <data_dir>/output)")
	return cmd
}
