// Package supervisor implements the boot state machine of spec.md §4.7:
// load-config, validate-config, build-runtime, spawn the catalog and
// controller tasks inside one cooperative runtime, and exit when either
// exits.
package supervisor

import (
	"context"
	"fmt"

	"udm/internal/apperr"
	"udm/internal/catalog"
	"udm/internal/catalog/catalogclient"
	"udm/internal/config"
	"udm/internal/controller"
	"udm/internal/controller/gpio"
	"udm/internal/storage"
	"udm/internal/storage/postgres"
	"udm/internal/storage/sqlite"
)

// SchemaError distinguishes a schema-creation failure from a plain backend
// connect failure, so callers can map it to exitcode.SchemaCreationFailure
// instead of exitcode.BadBackendConnection (spec.md §6's distinct exit
// codes for the two failure modes).
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string { return e.Err.Error() }
func (e *SchemaError) Unwrap() error { return e.Err }

// Runtime holds the built-but-not-yet-serving collaborators shared by the
// catalog and controller tasks.
type Runtime struct {
	Config  *config.Config
	Backend storage.Backend
	Catalog *catalog.Service
}

// Build opens the configured backend, verifies both schemas, and
// constructs the catalog service. It does not start listening on any
// port; that is each task's job (spec.md §4.7: build-runtime precedes
// spawn).
func Build(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := backend.GenSchemaCatalog(ctx); err != nil {
		backend.Close()
		return nil, &SchemaError{Err: apperr.Wrap(apperr.BackendError, "generate catalog schema", err)}
	}
	if err := backend.GenSchemaController(ctx); err != nil {
		backend.Close()
		return nil, &SchemaError{Err: apperr.Wrap(apperr.BackendError, "generate controller schema", err)}
	}
	return &Runtime{
		Config:  cfg,
		Backend: backend,
		Catalog: catalog.New(backend),
	}, nil
}

// Close releases the runtime's backend connection.
func (rt *Runtime) Close() error {
	return rt.Backend.Close()
}

// NewControllerService builds a controller.Service pointed at
// catalogBaseURL (normally this process's own catalog listener, reached
// over loopback: spec.md §4.6's "controller's embedded catalog client").
// The GPIO facade is a Simulator — no pack repo touches physical GPIO
// hardware, so there is nothing to wire a real driver to in this tree
// (see internal/controller/gpio and DESIGN.md).
func (rt *Runtime) NewControllerService(catalogBaseURL string) (*controller.Service, error) {
	client, err := catalogclient.New(catalogclient.Config{BaseURL: catalogBaseURL})
	if err != nil {
		return nil, err
	}
	return controller.New(rt.Backend, client, gpio.NewSimulator()), nil
}

func openBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch {
	case cfg.SQLite != nil:
		b, err := sqlite.Open(ctx, cfg.SQLite.DBPath)
		if err != nil {
			return nil, apperr.Wrap(apperr.BackendError, "open sqlite backend", err)
		}
		return b, nil
	case cfg.Postgres != nil:
		b, err := postgres.Open(ctx, postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.DBPort,
			Database:        cfg.Postgres.DBName,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			ApplicationName: cfg.Postgres.ApplicationName,
			Options:         cfg.Postgres.Options,
		})
		if err != nil {
			return nil, apperr.Wrap(apperr.BackendError, "open postgres backend", err)
		}
		return b, nil
	default:
		return nil, apperr.New(apperr.InvalidConfiguration, "no storage backend configured")
	}
}

func catalogURL(host string, port int) string {
	return fmt.Sprintf("http://%s:%d/v1/catalog", host, port)
}
