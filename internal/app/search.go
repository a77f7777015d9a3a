package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search items by title, author, Booth id or supported avatar",
		Long: `Search the whole catalog. Plain words must all match the title,
author, Booth id or a supported avatar path (case-insensitive).
Key=value terms filter on one field; repeat a key to allow several values.

Keys: Author, Title, BoothId, Avatar, Category
Quote values that contain spaces. Category values match the category
name in the configured language.

Examples:
  avex search hoodie
  avex search 'Author="Studio Zed"' Category=Clothing
  avex search Avatar=Karin Avatar=Mio ribbon`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("provide a search query")
			}
			session.Search(text)
			return printMain(jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
