package query

import (
	"fmt"

	"udm/internal/model"
	"udm/internal/schema"
)

// InsertPumpLog builds an append-only insert keyed by a caller-supplied
// UUID rather than a database-assigned surrogate id — the controller
// generates the request id up front so it can log "request received"
// before the dispense attempt resolves (spec.md §4.2 insert_with_uuid).
func InsertPumpLog(p model.PumpLog) Statement {
	return Statement{
		Text: fmt.Sprintf(
			"INSERT INTO %s (%s, %s, %s, %s) VALUES (%s)",
			schema.PumpLog,
			schema.PumpLogRequestID.Name, schema.PumpLogRequestKind.Name, schema.PumpLogFluidID.Name, schema.PumpLogCreatedAt.Name,
			placeholders(4),
		),
		Args: []any{p.RequestID, int(p.RequestKind), p.FluidID, p.CreatedAt},
	}
}
