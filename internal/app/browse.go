package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/explorer"
	"github.com/blackwell-systems/avex/internal/logging"
	"github.com/blackwell-systems/avex/internal/tui"
)

var overviewPanes = []explorer.Pane{explorer.PaneAvatars, explorer.PaneAuthors, explorer.PaneCategories}

func newBrowseCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ui"},
		Short:   "Browse the catalog (interactive TUI or text output)",
		Long: `Open the interactive explorer. Without a terminal, or with --json,
print the avatar, author and category lists instead.

Explorer keys:
  tab / shift+tab   switch pane
  enter             open the selected row
  backspace, esc    go back one level, or leave search
  /                 search (words, or Key=value terms)
  a                 actions for the selected row
  e, d              edit or delete the selected item
  o                 open the item folder or file
  c                 copy the Booth link
  s                 toggle sort by title or author
  L                 cycle the display language
  q                 quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) {
				return runExplorer()
			}
			return printOverview(jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// runExplorer launches the TUI. Automatic backups run in the background
// while it is open.
func runExplorer() error {
	opts := tui.Options{
		Session: session,
		Output:  out,
		Log:     logging.Component(logger, "tui"),
	}

	if cfg.Backup.Enabled {
		s := newScheduler(cfg.EffectiveBackupDir())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = s.Run(ctx) }()
		opts.Backup = s
	}

	return tui.RunExplorer(opts)
}

// printOverview prints the three side lists.
func printOverview(jsonOut bool) error {
	session.Refresh()

	if jsonOut {
		doc := make(map[string][]rowJSON, len(overviewPanes))
		for _, p := range overviewPanes {
			doc[p.String()] = toRowJSON(out.Rows[p])
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	for i, p := range overviewPanes {
		if i > 0 {
			fmt.Println()
		}
		header("── %s (%d)", p, len(out.Rows[p]))
		if err := printRows(out.Rows[p], false); err != nil {
			return err
		}
	}
	return nil
}
