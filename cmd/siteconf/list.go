package main

import (
	"fmt"

	"github.com/bayneri/siteconf/internal/report"
	"github.com/spf13/cobra"
)

func newListCmd(g *globalOptions) *cobra.Command {
	var (
		siteConfig string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the lightweight components of a site config",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadSiteConfig(g.logger, siteConfig)
			if err != nil {
				return err
			}
			listing := report.Summarize(siteConfig, doc)
			out := cmd.OutOrStdout()
			switch format {
			case "table":
				report.WriteTable(out, listing)
			case "markdown":
				report.WriteMarkdown(out, listing)
			case "json":
				return report.WriteJSON(out, listing)
			default:
				return usageError(fmt.Errorf("unknown format %q, expected table, markdown or json", format))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&siteConfig, "site-config", "", "compiled site level configuration YAML file")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "output format: table, markdown or json")
	_ = cmd.MarkFlagRequired("site-config")
	return cmd
}
