package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/famsnap/internal/app"
	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/ui/style"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [gedcom-file]",
		Short: "Select the next family and write it as the current snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rebuild, _ := cmd.Flags().GetBool("rebuild")

			res, err := c.app.Generate(cmd.Context(), app.GenerateOptions{
				Options: commonOptions(cmd, args),
				Rebuild: rebuild,
			})
			if err != nil {
				return err
			}

			printSummary(cmd, res)
			return nil
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().Bool("rebuild", false, "Rebuild the family cache even if it is up to date")
	return cmd
}

func printSummary(cmd *cobra.Command, res *app.GenerateResult) {
	out := cmd.OutOrStdout()
	check := lipgloss.NewStyle().Foreground(style.Green).Render(style.Check)

	_, _ = fmt.Fprintf(out, "%s Wrote %s\n", check, res.SelectionPath)
	_, _ = fmt.Fprintf(out, "  %s %s\n", style.Label("Subject:"), personName(res.Selection.Subject))
	_, _ = fmt.Fprintf(out, "  %s  %s\n", style.Label("Spouse:"), personName(res.Selection.Spouse))
	_, _ = fmt.Fprintf(out, "  %s %d\n", style.Label("Families:"), res.Total)
}

func personName(p *domain.PersonSnapshot) string {
	if p == nil {
		return "-"
	}
	if name := p.FullName(); name != "" {
		return name
	}
	return "(unnamed)"
}
