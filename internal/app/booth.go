package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/listing"
)

func newBoothCmd() *cobra.Command {
	var (
		open      bool
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:   "booth <path|title>",
		Short: "Copy or open an item's Booth link",
		Long: `Copy an item's Booth store link to the clipboard, or open it in the
browser with --open. The link uses the configured language.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveItem(args[0])
			if err != nil {
				return err
			}
			if !it.HasBoothID() {
				return fmt.Errorf("%q has no Booth id", it.Title)
			}
			url := session.BoothURL(it.BoothID)
			switch {
			case printOnly:
				fmt.Println(url)
				return nil
			case open:
				if err := session.Dispatch(listing.OpenBoothLink{ID: it.BoothID}); err != nil {
					return err
				}
				ok("Opened %s", url)
			default:
				if err := session.Dispatch(listing.CopyBoothLink{ID: it.BoothID}); err != nil {
					return err
				}
				ok("Copied %s", url)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the link in the browser")
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the link only")
	cmd.MarkFlagsMutuallyExclusive("open", "print")
	return cmd
}
