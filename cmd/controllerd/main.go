// Command controllerd runs the drink-controller daemon in isolation,
// dialing an already-running catalog over the network (spec.md §4.7, §1).
// The controller's own config file still names the catalog's port
// (udm.port); --catalog-host names the host, defaulting to localhost for
// a catalog running on the same machine.
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
	var configPath, catalogHost string
	code := 0

	rootCmd := &cobra.Command{
		Use:   "controllerd",
		Short: "Run the UDM drink-controller daemon",
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

			code = supervisor.RunControllerOnly(ctx, configPath, catalogHost, logger)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to the UDM config file (required)")
	rootCmd.Flags().StringVar(&catalogHost, "catalog-host", "localhost", "host of the running catalog daemon")
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
