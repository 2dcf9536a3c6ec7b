package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/embedstr/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), build.Version)
			return err
		},
	}
}
