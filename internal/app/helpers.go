package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/explorer"
	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/util"
)

// resolveItem finds an item by path, then by exact title.
func resolveItem(arg string) (catalog.Item, error) {
	if it, ok := session.Item(arg); ok {
		return it, nil
	}
	items, _, _ := session.Snapshot()
	var matches []catalog.Item
	for _, it := range items {
		if it.Title == arg {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 0:
		return catalog.Item{}, fmt.Errorf("item %q: %w", arg, catalog.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		var paths []string
		for _, m := range matches {
			paths = append(paths, m.ItemPath)
		}
		return catalog.Item{}, fmt.Errorf("title %q is ambiguous, use a path: %s", arg, strings.Join(paths, ", "))
	}
}

// resolveAvatar is resolveItem restricted to avatars.
func resolveAvatar(arg string) (catalog.Item, error) {
	it, err := resolveItem(arg)
	if err != nil {
		return it, err
	}
	if it.Type != catalog.TypeAvatar {
		return catalog.Item{}, fmt.Errorf("%q is not an avatar", arg)
	}
	return it, nil
}

// parseCategory maps a type name or custom category label to a category.
func parseCategory(s string) (catalog.Category, error) {
	if t := catalog.ParseItemType(strings.ToLower(s)); t != catalog.TypeUnknown && t != catalog.TypeCustom {
		return catalog.Category{Type: t}, nil
	}
	_, _, custom := session.Snapshot()
	for _, c := range custom {
		if strings.EqualFold(c, s) {
			return catalog.Category{Type: catalog.TypeCustom, Custom: c}, nil
		}
	}
	return catalog.Category{}, fmt.Errorf("unknown category %q", s)
}

type rowJSON struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Target   string   `json:"target,omitempty"`
	Actions  []string `json:"actions,omitempty"`
}

// target is the identifier a row command refers to.
func target(cmd listing.Command) string {
	switch c := cmd.(type) {
	case listing.SelectAvatar:
		return c.Path
	case listing.SelectAuthor:
		return c.Name
	case listing.SelectRootCategory:
		return c.Category.Key()
	case listing.SelectCategory:
		return c.Category.Key()
	case listing.SelectItem:
		return c.Path
	case listing.OpenSearchResult:
		return c.Path
	case listing.SelectSubfolder:
		return string(c.Label)
	case listing.OpenFile:
		return c.Path
	}
	return ""
}

func toRowJSON(rows []listing.Row) []rowJSON {
	list := make([]rowJSON, 0, len(rows))
	for _, r := range rows {
		j := rowJSON{Title: r.Title, Subtitle: r.Subtitle, Target: target(r.Command)}
		for _, a := range r.Actions {
			j.Actions = append(j.Actions, a.Label)
		}
		list = append(list, j)
	}
	return list
}

// printRows writes rows as an aligned list, or as JSON.
func printRows(rows []listing.Row, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(toRowJSON(rows))
	}

	if len(rows) == 0 {
		fmt.Println("Nothing to show.")
		return nil
	}
	for _, r := range rows {
		line := "  " + color.WhiteString(r.Title)
		if r.Subtitle != "" {
			line += "  " + color.HiBlackString(r.Subtitle)
		}
		if t := target(r.Command); t != "" && t != r.Title {
			line += "  " + color.CyanString(t)
		}
		fmt.Println(line)
	}
	return nil
}

// printMain prints the session's main pane with its breadcrumb.
func printMain(jsonOut bool) error {
	if !jsonOut {
		header("── %s", out.Breadcrumb)
	}
	if err := printRows(out.Rows[explorer.PaneMain], jsonOut); err != nil {
		return err
	}
	if !jsonOut && out.ResultText != "" {
		fmt.Printf("\n%s\n", out.ResultText)
	}
	return nil
}

// confirm asks a yes/no question. Without a terminal it returns def.
func confirm(question string, def bool) bool {
	if !util.CanPrompt() || flagNoInteractive {
		return def
	}
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Printf("%s (%s): ", question, hint)
	var response string
	_, _ = fmt.Scanln(&response)
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "":
		return def
	case "y", "yes":
		return true
	default:
		return false
	}
}
