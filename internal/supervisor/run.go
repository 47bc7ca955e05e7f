package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"udm/internal/apperr"
	"udm/internal/config"
	"udm/internal/exitcode"
	"udm/internal/logging"
)

// logRuntimeSize logs the cooperative task runtime's size: Go schedules
// goroutines across GOMAXPROCS OS threads by default, which is the "sized
// to the detected core count" rule spec.md §4.7 asks for.
func logRuntimeSize(logger *slog.Logger) {
	logger.Info("task runtime sized", "gomaxprocs", runtime.GOMAXPROCS(0))
}

// bootConfig runs the load-config and validate-config steps shared by all
// three entrypoints, returning the exitcode to use on failure.
func bootConfig(configPath string, logger *slog.Logger) (*config.Config, int) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		return nil, exitcode.FatalStartup
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("validate config", "error", err)
		var missingPW *config.MissingPasswordError
		if errors.As(err, &missingPW) {
			return nil, exitcode.MissingEnvironmentVariable
		}
		return nil, exitcode.FatalStartup
	}
	return cfg, 0
}

// RunUDM implements the full boot state machine for the combined daemon
// (cmd/udmd): load-config, validate-config, build-runtime, spawn both
// tasks, await either-task-exit, log-and-exit (spec.md §4.7).
func RunUDM(ctx context.Context, configPath string, logger *slog.Logger) int {
	logger = logging.Default(logger)

	cfg, code := bootConfig(configPath, logger)
	if cfg == nil {
		return code
	}

	logRuntimeSize(logger)

	rt, err := Build(ctx, cfg)
	if err != nil {
		logger.Error("build runtime", "error", err)
		return exitCodeForBuildError(err)
	}
	defer rt.Close()

	if err := rt.RunBoth(ctx, logger); err != nil {
		logger.Error("task exited", "error", err)
		return exitcode.FatalStartup
	}
	return 0
}

// RunCatalogOnly implements the boot sequence for a standalone catalog
// daemon (cmd/catalogd): no controller task, no readiness latch to wait
// on.
func RunCatalogOnly(ctx context.Context, configPath string, logger *slog.Logger) int {
	logger = logging.Default(logger)

	cfg, code := bootConfig(configPath, logger)
	if cfg == nil {
		return code
	}

	logRuntimeSize(logger)

	rt, err := Build(ctx, cfg)
	if err != nil {
		logger.Error("build runtime", "error", err)
		return exitCodeForBuildError(err)
	}
	defer rt.Close()

	if err := rt.RunCatalog(ctx, logger, nil); err != nil {
		logger.Error("catalog task exited", "error", err)
		return exitcode.FatalStartup
	}
	return 0
}

// RunControllerOnly implements the boot sequence for a standalone
// controller daemon (cmd/controllerd), dialing an already-running catalog
// at catalogHost on the port named in its own config file.
func RunControllerOnly(ctx context.Context, configPath, catalogHost string, logger *slog.Logger) int {
	logger = logging.Default(logger)

	cfg, code := bootConfig(configPath, logger)
	if cfg == nil {
		return code
	}

	logRuntimeSize(logger)

	rt, err := Build(ctx, cfg)
	if err != nil {
		logger.Error("build runtime", "error", err)
		return exitCodeForBuildError(err)
	}
	defer rt.Close()

	if err := rt.RunController(ctx, logger, nil, catalogHost); err != nil {
		logger.Error("controller task exited", "error", err)
		return exitcode.CatalogConnectionFailure
	}
	return 0
}

func exitCodeForBuildError(err error) int {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return exitcode.SchemaCreationFailure
	}
	kind, ok := apperr.KindOf(err)
	if !ok {
		return exitcode.FatalStartup
	}
	switch kind {
	case apperr.BackendError:
		return exitcode.BadBackendConnection
	default:
		return exitcode.FatalStartup
	}
}
