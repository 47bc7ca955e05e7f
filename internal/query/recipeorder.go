package query

import (
	"fmt"

	"udm/internal/apperr"
	"udm/internal/model"
	"udm/internal/schema"
)

func InsertRecipeInstructionOrder(o model.RecipeInstructionOrder) Statement {
	return Statement{
		Text: fmt.Sprintf(
			"INSERT INTO %s (%s, %s, %s) VALUES (%s) RETURNING %s",
			schema.RecipeInstructionOrders,
			schema.RecipeOrderRecipeID.Name, schema.RecipeOrderInstructionID.Name, schema.RecipeOrderPosition.Name,
			placeholders(3), schema.RecipeOrderID.Name,
		),
		Args: []any{o.RecipeID, o.InstructionID, o.Position},
	}
}

func UpdateRecipeInstructionOrder(o model.RecipeInstructionOrder) (Statement, error) {
	if o.ID == 0 {
		return Statement{}, apperr.New(apperr.InvalidInput, "update requires a non-zero id")
	}
	return Statement{
		Text: fmt.Sprintf(
			"UPDATE %s SET %s = $1, %s = $2, %s = $3 WHERE %s = $4 RETURNING %s",
			schema.RecipeInstructionOrders,
			schema.RecipeOrderRecipeID.Name, schema.RecipeOrderInstructionID.Name, schema.RecipeOrderPosition.Name,
			schema.RecipeOrderID.Name, schema.RecipeOrderID.Name,
		),
		Args: []any{o.RecipeID, o.InstructionID, o.Position, o.ID},
	}, nil
}

// DeleteRecipeInstructionOrder removes a single join row by its own id.
func DeleteRecipeInstructionOrder(id int64) Statement {
	return Statement{
		Text: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.RecipeInstructionOrders, schema.RecipeOrderID.Name),
		Args: []any{id},
	}
}

// DeleteRecipeInstructionOrderByTriple removes a join row addressed by its
// natural key instead of its surrogate id. The catalog service does not
// call it: its recipe-order updates and removals address join rows by id,
// and no code reconciles a recipe's full order list.
func DeleteRecipeInstructionOrderByTriple(recipeID, instructionID int64, position int) Statement {
	return Statement{
		Text: fmt.Sprintf(
			"DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3",
			schema.RecipeInstructionOrders,
			schema.RecipeOrderRecipeID.Name, schema.RecipeOrderInstructionID.Name, schema.RecipeOrderPosition.Name,
		),
		Args: []any{recipeID, instructionID, position},
	}
}
