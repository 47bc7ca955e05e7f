// Package cmdutil holds the small pieces of cobra/slog bootstrapping shared
// by cmd/catalogd, cmd/controllerd, and cmd/udmd: none of the three daemons
// differ in how they stand up a logger or parse --log-level-component, so
// that bit of main() lives here instead of being copied three times.
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"udm/internal/config"
	"udm/internal/logging"
)

// AddLoggingFlags registers the persistent flags every daemon command
// accepts for controlling log verbosity.
func AddLoggingFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "info", "default log level: debug, info, warn, error")
	cmd.PersistentFlags().StringArray("log-level-component", nil, "per-component log level override, e.g. catalog=debug (repeatable)")
}

// ResolveLogFilePath peeks at the config file's daemon.log_file_path
// without validating the rest of the document, so the logger can be
// pointed at it before the real load-config/validate-config boot steps
// run. Any failure (missing file, bad YAML) returns "" — the real error
// surfaces once the supervisor loads the config for real, logged
// wherever the stderr fallback lands.
func ResolveLogFilePath(configPath string) string {
	cfg, err := config.Load(configPath)
	if err != nil {
		return ""
	}
	return cfg.Daemon.LogFilePath
}

// OpenLogOutput opens path for appending, or returns os.Stderr unchanged
// when path is empty. The returned closer is a no-op for os.Stderr.
func OpenLogOutput(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return os.Stderr, io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	return f, f, nil
}

// BuildLogger constructs the process logger from the --log-level and
// --log-level-component flags, writing through output (typically the
// result of OpenLogOutput), and using logging.ComponentFilterHandler so
// individual components can be tuned without restarting with a different
// default level.
func BuildLogger(cmd *cobra.Command, output io.Writer) (*slog.Logger, error) {
	levelFlag, _ := cmd.Flags().GetString("log-level")
	defaultLevel, err := parseLevel(levelFlag)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	base := slog.NewTextHandler(output, &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true})
	filter := logging.NewComponentFilterHandler(base, defaultLevel)

	overrides, _ := cmd.Flags().GetStringArray("log-level-component")
	for _, entry := range overrides {
		component, levelStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("--log-level-component %q: expected component=level", entry)
		}
		level, err := parseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("--log-level-component %q: %w", entry, err)
		}
		filter.SetLevel(component, level)
	}

	return slog.New(filter), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}
