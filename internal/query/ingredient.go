package query

import (
	"fmt"

	"udm/internal/apperr"
	"udm/internal/model"
	"udm/internal/schema"
)

func InsertIngredient(ing model.Ingredient) Statement {
	return Statement{
		Text: fmt.Sprintf(
			"INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s) VALUES (%s) RETURNING %s",
			schema.Ingredients,
			schema.IngredientName.Name, schema.IngredientAlcoholic.Name, schema.IngredientDescription.Name,
			schema.IngredientIsActive.Name, schema.IngredientAmount.Name, schema.IngredientKind.Name,
			schema.IngredientRegulatorID.Name, schema.IngredientInstructionID.Name,
			placeholders(8), schema.IngredientID.Name,
		),
		Args: []any{
			ing.Name, ing.Alcoholic, ing.Description, ing.IsActive, ing.Amount,
			int(ing.Kind), ing.RegulatorID, ing.InstructionID,
		},
	}
}

func UpdateIngredient(ing model.Ingredient) (Statement, error) {
	if ing.ID == 0 {
		return Statement{}, apperr.New(apperr.InvalidInput, "update requires a non-zero id")
	}
	return Statement{
		Text: fmt.Sprintf(
			"UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8 WHERE %s = $9 RETURNING %s",
			schema.Ingredients,
			schema.IngredientName.Name, schema.IngredientAlcoholic.Name, schema.IngredientDescription.Name,
			schema.IngredientIsActive.Name, schema.IngredientAmount.Name, schema.IngredientKind.Name,
			schema.IngredientRegulatorID.Name, schema.IngredientInstructionID.Name,
			schema.IngredientID.Name, schema.IngredientID.Name,
		),
		Args: []any{
			ing.Name, ing.Alcoholic, ing.Description, ing.IsActive, ing.Amount,
			int(ing.Kind), ing.RegulatorID, ing.InstructionID, ing.ID,
		},
	}, nil
}

func DeleteIngredient(id int64) Statement {
	return Statement{
		Text: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Ingredients, schema.IngredientID.Name),
		Args: []any{id},
	}
}
