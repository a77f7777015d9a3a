package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/util"
)

// itemFlags are the editable item fields shared by add and edit.
type itemFlags struct {
	title       string
	author      string
	authorImage string
	image       string
	typ         string
	custom      string
	avatars     []string
	boothID     int
	material    string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Item title (default: folder name)")
	cmd.Flags().StringVar(&f.author, "author", "", "Author name")
	cmd.Flags().StringVar(&f.authorImage, "author-image", "", "Author image file")
	cmd.Flags().StringVar(&f.image, "image", "", "Thumbnail image file")
	cmd.Flags().StringVar(&f.typ, "type", "", "Item type: "+typeNames())
	cmd.Flags().StringVar(&f.custom, "category", "", "Custom category label (implies --type custom)")
	cmd.Flags().StringSliceVar(&f.avatars, "avatar", nil, "Supported avatar path or title (repeatable)")
	cmd.Flags().IntVar(&f.boothID, "booth-id", catalog.NoBoothID, "Booth item id")
	cmd.Flags().StringVar(&f.material, "material", "", "Material folder")
}

// apply copies the flags the user set onto it.
func (f *itemFlags) apply(cmd *cobra.Command, it *catalog.Item) error {
	changed := cmd.Flags().Changed
	if changed("title") {
		it.Title = f.title
	}
	if changed("author") {
		it.AuthorName = f.author
	}
	if changed("author-image") {
		it.AuthorImagePath = absPath(f.authorImage)
	}
	if changed("image") {
		it.ImagePath = absPath(f.image)
	}
	if changed("type") {
		t := catalog.ParseItemType(strings.ToLower(f.typ))
		if t == catalog.TypeUnknown {
			return fmt.Errorf("unknown type %q (want one of %s)", f.typ, typeNames())
		}
		it.Type = t
	}
	if changed("category") {
		if f.custom == "" {
			return fmt.Errorf("--category is empty")
		}
		it.Type = catalog.TypeCustom
		it.CustomCategory = f.custom
	}
	if it.Type == catalog.TypeCustom && it.CustomCategory == "" {
		return fmt.Errorf("custom items need --category")
	}
	if changed("avatar") {
		var paths []string
		for _, a := range f.avatars {
			av, err := resolveAvatar(a)
			if err != nil {
				return err
			}
			paths = append(paths, av.ItemPath)
		}
		it.SupportedAvatar = paths
	}
	if changed("booth-id") {
		it.BoothID = f.boothID
	}
	if changed("material") {
		it.MaterialPath = absPath(f.material)
	}
	return nil
}

func typeNames() string {
	names := make([]string, 0, len(catalog.FixedTypes)+1)
	for _, t := range catalog.FixedTypes {
		names = append(names, string(t))
	}
	return strings.Join(append(names, string(catalog.TypeCustom)), ", ")
}

func absPath(p string) string {
	if p == "" {
		return ""
	}
	if abs, err := filepath.Abs(util.ExpandHome(p)); err == nil {
		return abs
	}
	return p
}

func newAddCmd() *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "add <folder>",
		Short: "Add an item folder to the catalog",
		Long: `Add an item folder to the catalog. The folder path becomes the item's
identity; its name is used as the title unless --title is given.

Examples:
  avex add ~/Assets/Karin --type avatar --author "Studio Nano" --booth-id 123456
  avex add ~/Assets/RibbonHat --type accessory --avatar Karin --avatar Mio
  avex add ~/Assets/Glow --category Effects`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := absPath(args[0])
			if !util.Exists(dir) {
				return fmt.Errorf("folder %s does not exist", dir)
			}
			it := catalog.Item{
				Title:    filepath.Base(dir),
				Type:     catalog.TypeAvatar,
				BoothID:  catalog.NoBoothID,
				ItemPath: dir,
			}
			if err := f.apply(cmd, &it); err != nil {
				return err
			}
			if it.Type == catalog.TypeCustom {
				// Registering an existing label is not an error here.
				_ = session.AddCustomCategory(it.CustomCategory)
			}
			if err := session.AddItem(it); err != nil {
				return err
			}
			ok("Added %q (%s)", it.Title, it.ItemPath)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}
