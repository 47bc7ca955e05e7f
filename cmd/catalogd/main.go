// Command catalogd runs the catalog daemon in isolation, for deployments
// that split the catalog and drink-controller onto separate hosts or
// processes (spec.md §4.7, §1).
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"udm/internal/cmdutil"
	"udm/internal/exitcode"
	"udm/internal/supervisor"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	code := 0

	rootCmd := &cobra.Command{
		Use:   "catalogd",
		Short: "Run the UDM catalog daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, closer, err := cmdutil.OpenLogOutput(cmdutil.ResolveLogFilePath(configPath))
			if err != nil {
				code = exitcode.FatalStartup
				return err
			}
			defer closer.Close()

			logger, err := cmdutil.BuildLogger(cmd, output)
			if err != nil {
				code = exitcode.InvalidCLIInput
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			code = supervisor.RunCatalogOnly(ctx, configPath, logger)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to the UDM config file (required)")
	rootCmd.MarkFlagRequired("config")
	cmdutil.AddLoggingFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		if code == 0 {
			code = exitcode.InvalidCLIInput
		}
		return code
	}
	return code
}
