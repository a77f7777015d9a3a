package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/explorer"
	"github.com/blackwell-systems/avex/internal/listing"
)

func newAvatarsCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "avatars",
		Short: "List avatars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session.Refresh()
			return printRows(out.Rows[explorer.PaneAvatars], jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newAuthorsCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "authors",
		Short: "List authors and how many items each has",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session.Refresh()
			return printRows(out.Rows[explorer.PaneAuthors], jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session.Refresh()
			return printRows(out.Rows[explorer.PaneCategories], jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newItemsCmd() *cobra.Command {
	var (
		avatar   string
		author   string
		category string
		sortBy   string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List items under an avatar, author or category",
		Long: `List items the way the explorer shows them.

With --avatar or --author and no --category, the categories holding
matching items are listed instead.

Examples:
  avex items --avatar Karin --category clothing
  avex items --avatar '*' --category accessory
  avex items --author "Studio Zed"
  avex items --category shader --sort author`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sortBy != "" {
				session.SetSort(listing.ParseSortKey(sortBy))
			}
			if err := navigateTo(avatar, author, category); err != nil {
				return err
			}
			return printMain(jsonOut)
		},
	}

	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar path or title ('*' for all avatars)")
	cmd.Flags().StringVar(&author, "author", "", "Author name")
	cmd.Flags().StringVar(&category, "category", "", "Category type or custom category label")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort items by title or author")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.MarkFlagsMutuallyExclusive("avatar", "author")
	return cmd
}

// navigateTo drives the session to the list named by the flags.
func navigateTo(avatar, author, category string) error {
	switch {
	case avatar == "*":
		session.SelectWildcardAvatar()
	case avatar != "":
		it, err := resolveAvatar(avatar)
		if err != nil {
			return err
		}
		if err := session.Dispatch(listing.SelectAvatar{Path: it.ItemPath}); err != nil {
			return err
		}
	case author != "":
		if err := session.Dispatch(listing.SelectAuthor{Name: author}); err != nil {
			return err
		}
	case category == "":
		return fmt.Errorf("provide --avatar, --author or --category")
	}

	if category == "" {
		return nil
	}
	c, err := parseCategory(category)
	if err != nil {
		return err
	}
	if avatar == "" && author == "" {
		return session.Dispatch(listing.SelectRootCategory{Category: c})
	}
	return session.Dispatch(listing.SelectCategory{Category: c})
}
