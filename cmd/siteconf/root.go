package main

import (
	"io"
	"strings"

	"github.com/bayneri/siteconf/internal/logging"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type globalOptions struct {
	logLevel string
	logJSON  bool
	logger   hclog.Logger
}

// newRootCmd builds the command tree. Invoked without a subcommand, siteconf
// behaves like "siteconf generate".
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalOptions{logger: hclog.NewNullLogger()}
	gen := &generateOptions{}

	root := &cobra.Command{
		Use:   "siteconf",
		Short: "Render Hadoop site configuration for a lightweight component",
		Long: `siteconf reads a compiled site level configuration file, selects the
lightweight component with the given execution id and writes core-site.xml,
hdfs-site.xml and mapred-site.xml for it into the output directory.`,
		Version:       version,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.ValidateRequiredFlags(); err != nil {
				return usageError(err)
			}
			logger, err := logging.New(logging.Options{
				Level:  g.logLevel,
				JSON:   g.logJSON,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return usageError(err)
			}
			g.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, gen)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(`{{printf "siteconf version %s\n" .Version}}`)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level: trace, debug, info, warn or error")
	root.PersistentFlags().BoolVar(&g.logJSON, "log-json", false, "write logs as JSON")
	gen.bind(root)

	root.AddCommand(
		newGenerateCmd(g),
		newValidateCmd(g),
		newListCmd(g),
		newRenderCmd(g),
		newVersionCmd(),
	)
	root.SetGlobalNormalizationFunc(dashedFlagNames)
	return root
}

// dashedFlagNames lets --site_config and friends stand in for the dashed
// flag names.
func dashedFlagNames(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(err)
	}
	return nil
}
