package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/listing"
)

// promptEditor confirms deletions on the terminal. Flags that were set
// answer their question without a prompt.
type promptEditor struct {
	cmd            *cobra.Command
	skipConfirm    bool
	stripSupported bool
	stripGroups    bool
	confirmed      bool
}

func (p *promptEditor) EditItem(it catalog.Item) (catalog.Item, bool) {
	return it, false
}

func (p *promptEditor) ConfirmDelete(it catalog.Item, refs, groups []string) (catalog.DeleteOptions, bool) {
	fmt.Println()
	fmt.Println(color.YellowString("⚠ Warning: You are about to delete an item"))
	fmt.Println()
	fmt.Printf("Title:      %s\n", color.WhiteString(it.Title))
	fmt.Printf("Author:     %s\n", it.AuthorName)
	fmt.Printf("Path:       %s\n", color.CyanString(it.ItemPath))
	if len(refs) > 0 {
		fmt.Printf("Listed as supported avatar by %d item(s)\n", len(refs))
	}
	if len(groups) > 0 {
		fmt.Printf("Member of common groups: %s\n", strings.Join(groups, ", "))
	}
	fmt.Println()
	fmt.Println("The folder on disk is not touched.")
	fmt.Println()

	if !p.skipConfirm && !confirm("Delete this item?", false) {
		return catalog.DeleteOptions{}, false
	}

	var opts catalog.DeleteOptions
	if len(refs) > 0 {
		opts.StripSupported = p.stripSupported
		if !p.cmd.Flags().Changed("strip-supported") {
			opts.StripSupported = confirm("Remove it from the supported avatars of those items?", true)
		}
	}
	if len(groups) > 0 {
		opts.StripGroups = p.stripGroups
		if !p.cmd.Flags().Changed("strip-groups") {
			opts.StripGroups = confirm("Remove it from those common groups?", true)
		}
	}
	p.confirmed = true
	return opts, true
}

func newDeleteCmd() *cobra.Command {
	p := &promptEditor{}

	cmd := &cobra.Command{
		Use:     "delete <path|title>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from the catalog",
		Long: `Remove an item from the catalog. The item folder itself is kept.

Deleting an avatar can also remove it from the supported avatars of
other items and from common avatar groups. Without a terminal both
default to yes unless the flags say otherwise.

Examples:
  avex delete ~/Assets/RibbonHat
  avex delete Karin --yes --strip-supported=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveItem(args[0])
			if err != nil {
				return err
			}
			p.cmd = cmd
			session.SetEditor(p)
			if err := session.Dispatch(listing.DeleteItem{Path: it.ItemPath}); err != nil {
				return err
			}
			if !p.confirmed {
				fmt.Println(color.YellowString("Cancelled."))
				return nil
			}
			ok("Deleted %q", it.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&p.skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&p.stripSupported, "strip-supported", true, "Remove the avatar from items that list it")
	cmd.Flags().BoolVar(&p.stripGroups, "strip-groups", true, "Remove the avatar from common groups")
	return cmd
}
