package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect TEXT...",
		Short: "Show the storage mode of each text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range c.app.Inspect(args) {
				if _, err := fmt.Fprintf(out, "%-8s %4d  %#v\n", s.Mode(), s.Len(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
