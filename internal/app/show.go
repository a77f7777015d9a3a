package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/explorer"
	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/navigator"
)

type itemJSON struct {
	catalog.Item
	BoothURL    string   `json:"booth_url,omitempty"`
	AvatarNames []string `json:"avatar_names,omitempty"`
}

func newShowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <path|title>",
		Short: "Show an item and the contents of its folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveItem(args[0])
			if err != nil {
				return err
			}
			names := avatarNames(it)

			if jsonOut {
				j := itemJSON{Item: it, AvatarNames: names}
				if it.HasBoothID() {
					j.BoothURL = session.BoothURL(it.BoothID)
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(j)
			}

			lang := session.Language()
			fmt.Printf("Title:      %s\n", color.WhiteString(it.Title))
			fmt.Printf("Author:     %s\n", it.AuthorName)
			fmt.Printf("Category:   %s\n", navigator.CategoryName(it.Category(), lang))
			fmt.Printf("Path:       %s\n", color.CyanString(it.ItemPath))
			if it.MaterialPath != "" {
				fmt.Printf("Materials:  %s\n", it.MaterialPath)
			}
			if it.HasBoothID() {
				fmt.Printf("Booth:      %s\n", session.BoothURL(it.BoothID))
			}
			if len(names) > 0 {
				fmt.Printf("Supports:   %s\n", strings.Join(names, ", "))
			}
			fmt.Println()

			if err := session.Dispatch(listing.OpenSearchResult{Path: it.ItemPath}); err != nil {
				warn("Could not read item folder: %v", err)
				return nil
			}
			return printRows(out.Rows[explorer.PaneMain], false)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// avatarNames resolves an item's supported avatars, skipping stale paths.
func avatarNames(it catalog.Item) []string {
	var names []string
	for _, p := range it.SupportedAvatar {
		if a, ok := session.Item(p); ok {
			names = append(names, a.Title)
		}
	}
	return names
}
