package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/catalog"
)

func newImportLegacyCmd() *cobra.Command {
	var (
		merge       bool
		skipConfirm bool
	)

	cmd := &cobra.Command{
		Use:   "import-legacy <folder>",
		Short: "Import a legacy JSON data folder",
		Long: `Import ItemsData.json, CommonAvatar.json and CustomCategory.txt from a
legacy data folder. Supported avatars stored as titles are rewritten
to paths.

By default the catalog is replaced. With --merge, items whose path is
not in the catalog yet are added and everything else is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imported, err := catalog.ImportLegacy(absPath(args[0]))
			if err != nil {
				return err
			}
			if imported.Len() == 0 {
				warn("No items found in %s", args[0])
				return nil
			}

			if !merge {
				if !skipConfirm && !confirm(fmt.Sprintf("Replace the catalog with %d imported item(s)?", imported.Len()), false) {
					fmt.Println("Cancelled.")
					return nil
				}
				return replaceCatalog(imported)
			}

			added, skipped := 0, 0
			for _, it := range imported.Items() {
				err := session.AddItem(it)
				switch {
				case err == nil:
					added++
				case errors.Is(err, catalog.ErrDuplicatePath):
					skipped++
				default:
					return err
				}
			}
			for _, c := range imported.CustomCategories() {
				_ = session.AddCustomCategory(c)
			}
			for _, g := range imported.Groups() {
				if err := session.SaveGroup(g.Name, g.Avatars); err != nil {
					return err
				}
			}
			ok("Imported %d item(s), %d already present", added, skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false, "Add new items instead of replacing the catalog")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
