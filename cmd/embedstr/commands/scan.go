package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/embedstr/internal/adapters/config"
	"go.trai.ch/embedstr/internal/app"
	"go.trai.ch/embedstr/internal/core/domain"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Tokenize files and report how many tokens fit inline",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			asJSON, _ := cmd.Flags().GetBool("json")
			split, _ := cmd.Flags().GetString("split")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			report, err := c.app.Scan(cmd.Context(), args, app.ScanOptions{
				ConfigPath:    configPath,
				RequireConfig: cmd.Flags().Changed("config"),
				Split:         split,
				Concurrency:   concurrency,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	cmd.Flags().StringP("split", "s", "", "Token split mode: words, lines or fields")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of files scanned in parallel (default one per CPU)")
	return cmd
}

func printReport(w io.Writer, r *domain.Report) error {
	for _, f := range r.Files {
		if _, err := fmt.Fprintf(w, "%-40s %8d tokens %8d embedded %8d boxed\n",
			f.Path, f.Tokens, f.Embedded, f.Boxed); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d tokens (%d distinct) in %d files, limit %d bytes\n"+
		"embedded: %d (%.1f%%, %d bytes)\nboxed:    %d (%d bytes)\n",
		r.Tokens, r.Distinct, len(r.Files), r.Limit,
		r.Embedded, 100*r.EmbeddedRatio(), r.EmbeddedBytes,
		r.Boxed, r.BoxedBytes)
	return err
}
