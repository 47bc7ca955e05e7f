package query

import (
	"fmt"

	"udm/internal/apperr"
	"udm/internal/model"
	"udm/internal/schema"
)

func InsertInstruction(in model.Instruction) Statement {
	return Statement{
		Text: fmt.Sprintf(
			"INSERT INTO %s (%s, %s) VALUES (%s) RETURNING %s",
			schema.Instructions,
			schema.InstructionName.Name, schema.InstructionDetail.Name,
			placeholders(2), schema.InstructionID.Name,
		),
		Args: []any{in.Name, in.Detail},
	}
}

func UpdateInstruction(in model.Instruction) (Statement, error) {
	if in.ID == 0 {
		return Statement{}, apperr.New(apperr.InvalidInput, "update requires a non-zero id")
	}
	return Statement{
		Text: fmt.Sprintf(
			"UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3 RETURNING %s",
			schema.Instructions,
			schema.InstructionName.Name, schema.InstructionDetail.Name,
			schema.InstructionID.Name, schema.InstructionID.Name,
		),
		Args: []any{in.Name, in.Detail, in.ID},
	}, nil
}

// DeleteInstruction detaches rather than cascades: ingredients and
// recipe_instruction_orders referencing this instruction keep their rows
// with instruction_id set to null, enforced by the DDL's "on delete set
// null" reference.
func DeleteInstruction(id int64) Statement {
	return Statement{
		Text: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Instructions, schema.InstructionID.Name),
		Args: []any{id},
	}
}
