package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage common avatar groups",
		Long: `Common avatar groups name avatars that share a body. An item made for
one member of a group is listed under every other member too.`,
	}
	cmd.AddCommand(newGroupsListCmd(), newGroupsSetCmd(), newGroupsDeleteCmd())
	return cmd
}

func newGroupsListCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List common avatar groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, groups, _ := session.Snapshot()
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(groups)
			}
			if len(groups) == 0 {
				fmt.Println("No common groups.")
				return nil
			}
			for _, g := range groups {
				header("── %s  (%d avatars)", g.Name, len(g.Avatars))
				for _, p := range g.Avatars {
					if a, found := session.Item(p); found {
						fmt.Printf("  %s  %s\n", color.WhiteString(a.Title), color.CyanString(p))
					} else {
						fmt.Printf("  %s  %s\n", color.RedString("(missing)"), p)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newGroupsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <avatar>...",
		Short: "Create a group or replace its avatars",
		Example: `  avex groups set Slim Karin Mio
  avex groups set Slim ~/Assets/Karin ~/Assets/Mio ~/Assets/Rusk`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var paths []string
			for _, a := range args[1:] {
				av, err := resolveAvatar(a)
				if err != nil {
					return err
				}
				paths = append(paths, av.ItemPath)
			}
			if err := session.SaveGroup(args[0], paths); err != nil {
				return err
			}
			ok("Saved group %q with %d avatar(s)", args[0], len(paths))
			return nil
		},
	}
}

func newGroupsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a common group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.DeleteGroup(args[0]); err != nil {
				return err
			}
			ok("Deleted group %q", args[0])
			return nil
		},
	}
}
