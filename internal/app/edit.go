package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/catalog"
)

func newEditCmd() *cobra.Command {
	var (
		f       itemFlags
		newPath string
	)

	cmd := &cobra.Command{
		Use:   "edit <path|title>",
		Short: "Edit an item's metadata",
		Long: `Edit an item. Only the flags you pass are changed.

Moving an item with --path updates every reference to it: items that
list it as a supported avatar and common avatar groups.

Examples:
  avex edit Karin --title "Karin v2"
  avex edit ~/Assets/RibbonHat --avatar Karin --avatar Mio --booth-id 98765
  avex edit ~/Assets/Karin --path ~/Assets/Avatars/Karin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveItem(args[0])
			if err != nil {
				return err
			}
			oldPath := it.ItemPath
			if err := f.apply(cmd, &it); err != nil {
				return err
			}
			if cmd.Flags().Changed("path") {
				it.ItemPath = absPath(newPath)
			}
			if it.Type == catalog.TypeCustom {
				_ = session.AddCustomCategory(it.CustomCategory)
			}
			if err := session.EditItem(oldPath, it); err != nil {
				return fmt.Errorf("editing %q: %w", it.Title, err)
			}
			ok("Updated %q", it.Title)
			if it.ItemPath != oldPath {
				ok("References moved from %s to %s", oldPath, it.ItemPath)
			}
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&newPath, "path", "", "Move the item to a new folder path")
	return cmd
}
