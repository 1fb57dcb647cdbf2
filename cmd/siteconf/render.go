package main

import (
	"fmt"
	"strings"

	"github.com/bayneri/siteconf/internal/export/sitexml"
	"github.com/bayneri/siteconf/internal/hadoop"
	"github.com/spf13/cobra"
)

func newRenderCmd(g *globalOptions) *cobra.Command {
	opts := &componentFlags{}
	var document string
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Print one site document to stdout",
		Example: `  siteconf render --site-config site.yaml --execution-id 3 --document hdfs-site`,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSuffix(document, ".xml")
			if !knownSite(name) {
				return usageError(fmt.Errorf("unknown document %q, expected one of %s", document, strings.Join(hadoop.SiteNames, ", ")))
			}
			plan, err := opts.plan(g.logger)
			if err != nil {
				return err
			}
			doc, err := plan.Document(name)
			if err != nil {
				return err
			}
			data, err := sitexml.Render(doc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	opts.bind(cmd, true)
	cmd.Flags().StringVar(&document, "document", "", "document to render: core-site, hdfs-site or mapred-site")
	_ = cmd.MarkFlagRequired("document")
	return cmd
}

func knownSite(name string) bool {
	for _, site := range hadoop.SiteNames {
		if site == name {
			return true
		}
	}
	return false
}
