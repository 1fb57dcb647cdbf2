package main

import (
	"fmt"
	"strings"

	"github.com/bayneri/siteconf/internal/hadoop"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

func newValidateCmd(g *globalOptions) *cobra.Command {
	opts := &componentFlags{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a site config without writing anything",
		Long: `Check the structure of a site config file. With --execution-id only that
component's config is checked against the site documents; without it every
component is checked.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runValidate(g, opts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Site config is valid.")
			return nil
		},
	}
	opts.bind(cmd, false)
	return cmd
}

func runValidate(g *globalOptions, opts *componentFlags) error {
	if strings.TrimSpace(opts.executionID) != "" {
		_, err := opts.plan(g.logger)
		return err
	}

	doc, err := loadSiteConfig(g.logger, opts.siteConfig)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	var mErr *multierror.Error
	for _, c := range doc.LightweightComponents {
		if _, err := hadoop.DecodeAll(c.Config); err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("execution_id %d: %w", c.ExecutionID, err))
			continue
		}
		g.logger.Debug("component is complete", "execution_id", c.ExecutionID, "name", c.DisplayName())
	}
	return mErr.ErrorOrNil()
}
