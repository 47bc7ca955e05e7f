// Package exitcode names the stable process exit codes the daemons and
// CLIs return (spec.md §6), so callers and deployment tooling can branch
// on a number without re-deriving its meaning from log text.
package exitcode

const (
	// FatalStartup covers any unrecoverable failure during config load,
	// validation, or backend connect that isn't one of the more specific
	// codes below.
	FatalStartup = 1

	// InvalidCLIInput is returned by cobra command RunE functions on
	// argument/flag validation failure.
	InvalidCLIInput = 2

	// CatalogConnectionFailure is returned by controllerd whenever its
	// controller task exits with an error. The catalog is not contacted at
	// boot, so an unreachable catalog does not by itself produce this code.
	CatalogConnectionFailure = 10

	// BadBackendConnection is returned when the configured storage
	// backend (Postgres or SQLite) cannot be opened.
	BadBackendConnection = 15

	// SchemaCreationFailure is returned when GenSchemaCatalog or
	// GenSchemaController fails against an otherwise-reachable backend.
	SchemaCreationFailure = 20

	// MissingEnvironmentVariable is returned when a networked backend is
	// configured without a password on file and UDM_POSTGRES_PW is unset.
	MissingEnvironmentVariable = 30
)
