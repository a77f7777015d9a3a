package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage custom categories",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <label>",
			Short: "Add a custom category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := session.AddCustomCategory(args[0]); err != nil {
					return err
				}
				ok("Added category %q", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List custom categories",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				_, _, custom := session.Snapshot()
				if len(custom) == 0 {
					fmt.Println("No custom categories.")
					return
				}
				for _, c := range custom {
					fmt.Printf("  %s\n", c)
				}
			},
		},
	)
	return cmd
}
