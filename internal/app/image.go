package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/util"
)

func newThumbnailCmd() *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "thumbnail <path|title> [image]",
		Short: "Change an item's thumbnail image",
		Example: `  avex thumbnail "Ribbon Hat" ~/Pictures/hat.png
  avex thumbnail ~/Assets/RibbonHat --clear`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveItem(args[0])
			if err != nil {
				return err
			}
			image, err := imageArg(args, unset)
			if err != nil {
				return err
			}
			if err := session.SetThumbnail(it.ItemPath, image); err != nil {
				return err
			}
			ok("Thumbnail of %q updated", it.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&unset, "clear", false, "Remove the thumbnail")
	return cmd
}

func newAuthorImageCmd() *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:     "author-image <author> [image]",
		Short:   "Change the author image on every item by an author",
		Example: `  avex author-image "Studio Zed" ~/Pictures/zed.png`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := imageArg(args, unset)
			if err != nil {
				return err
			}
			if err := session.SetAuthorImage(args[0], image); err != nil {
				return err
			}
			ok("Author image of %q updated", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&unset, "clear", false, "Remove the author image")
	return cmd
}

// imageArg returns the absolute image path from args[1], or "" with --clear.
func imageArg(args []string, unset bool) (string, error) {
	switch {
	case unset && len(args) == 2:
		return "", fmt.Errorf("pass an image or --clear, not both")
	case unset:
		return "", nil
	case len(args) < 2:
		return "", fmt.Errorf("missing image path")
	}
	image := absPath(args[1])
	if !util.Exists(image) {
		return "", fmt.Errorf("image not found: %s", image)
	}
	return image, nil
}
