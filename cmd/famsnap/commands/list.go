package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/famsnap/internal/app"
	"go.trai.ch/famsnap/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [gedcom-file]",
		Short: "List every cached family",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rebuild, _ := cmd.Flags().GetBool("rebuild")

			res, err := c.app.List(cmd.Context(), app.ListOptions{
				Options: commonOptions(cmd, args),
				Rebuild: rebuild,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := range res.Entries {
				e := &res.Entries[i]
				_, _ = fmt.Fprintf(out, "%s\t%s %s %s\n",
					style.Label(e.ID), personName(e.Subject), style.Arrow, personName(e.Spouse))
			}
			return nil
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().Bool("rebuild", false, "Rebuild the family cache even if it is up to date")
	return cmd
}
