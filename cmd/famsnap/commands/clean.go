package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [gedcom-file]",
		Short: "Remove the family caches and the current snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clean(cmd.Context(), commonOptions(cmd, args))
		},
	}
	addOutputFlags(cmd)
	return cmd
}
