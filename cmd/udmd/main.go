// Command udmd runs the catalog and drink-controller daemons together in
// one process, as two cooperative tasks sharing a storage backend
// (spec.md §4.7).
//
// Logging:
//   - Base logger is created here with output format and level
//   - Logger is passed to the supervisor via dependency injection
//   - No global slog configuration (no slog.SetDefault)
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
		Use:   "udmd",
		Short: "Run the UDM catalog and drink-controller daemons",
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

			code = supervisor.RunUDM(ctx, configPath, logger)
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
