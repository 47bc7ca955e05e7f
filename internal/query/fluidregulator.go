package query

import (
	"fmt"

	"udm/internal/apperr"
	"udm/internal/model"
	"udm/internal/schema"
)

// InsertFluidRegulator builds an INSERT ... RETURNING id. The id column
// is omitted from the column list; the backend assigns it.
func InsertFluidRegulator(fr model.FluidRegulator) Statement {
	return Statement{
		Text: fmt.Sprintf(
			"INSERT INTO %s (%s, %s, %s) VALUES (%s) RETURNING %s",
			schema.FluidRegulators,
			schema.FluidRegulatorKind.Name, schema.FluidRegulatorGPIOPin.Name, schema.FluidRegulatorPumpNumber.Name,
			placeholders(3), schema.FluidRegulatorID.Name,
		),
		Args: []any{int(fr.Kind), fr.GPIOPin, fr.PumpNumber},
	}
}

// UpdateFluidRegulator builds an UPDATE ... WHERE id = $n RETURNING id.
// fr.ID must be non-zero (spec.md §8: update with id=0 fails invalid-input).
func UpdateFluidRegulator(fr model.FluidRegulator) (Statement, error) {
	if fr.ID == 0 {
		return Statement{}, apperr.New(apperr.InvalidInput, "update requires a non-zero id")
	}
	return Statement{
		Text: fmt.Sprintf(
			"UPDATE %s SET %s = $1, %s = $2, %s = $3 WHERE %s = $4 RETURNING %s",
			schema.FluidRegulators,
			schema.FluidRegulatorKind.Name, schema.FluidRegulatorGPIOPin.Name, schema.FluidRegulatorPumpNumber.Name,
			schema.FluidRegulatorID.Name, schema.FluidRegulatorID.Name,
		),
		Args: []any{int(fr.Kind), fr.GPIOPin, fr.PumpNumber, fr.ID},
	}, nil
}

// DeleteFluidRegulator builds a DELETE WHERE id = $1. Dependent
// ingredients are detached, not cascade-deleted (spec.md invariants);
// that's enforced by the "on delete set null" foreign key in the DDL,
// not by this statement.
func DeleteFluidRegulator(id int64) Statement {
	return Statement{
		Text: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.FluidRegulators, schema.FluidRegulatorID.Name),
		Args: []any{id},
	}
}
