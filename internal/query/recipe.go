package query

import (
	"fmt"

	"udm/internal/apperr"
	"udm/internal/model"
	"udm/internal/schema"
)

func InsertRecipe(r model.Recipe) Statement {
	return Statement{
		Text: fmt.Sprintf(
			"INSERT INTO %s (%s, %s, %s, %s) VALUES (%s) RETURNING %s",
			schema.Recipes,
			schema.RecipeName.Name, schema.RecipeDrinkSize.Name, schema.RecipeDescription.Name, schema.RecipeUserInput.Name,
			placeholders(4), schema.RecipeID.Name,
		),
		Args: []any{r.Name, int(r.DrinkSize), r.Description, r.UserInput},
	}
}

func UpdateRecipe(r model.Recipe) (Statement, error) {
	if r.ID == 0 {
		return Statement{}, apperr.New(apperr.InvalidInput, "update requires a non-zero id")
	}
	return Statement{
		Text: fmt.Sprintf(
			"UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4 WHERE %s = $5 RETURNING %s",
			schema.Recipes,
			schema.RecipeName.Name, schema.RecipeDrinkSize.Name, schema.RecipeDescription.Name, schema.RecipeUserInput.Name,
			schema.RecipeID.Name, schema.RecipeID.Name,
		),
		Args: []any{r.Name, int(r.DrinkSize), r.Description, r.UserInput, r.ID},
	}, nil
}

// DeleteRecipe cascades: recipe_instruction_orders rows for this recipe
// are removed by the DDL's "on delete cascade" reference, since an order
// row is meaningless without its recipe.
func DeleteRecipe(id int64) Statement {
	return Statement{
		Text: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Recipes, schema.RecipeID.Name),
		Args: []any{id},
	}
}
