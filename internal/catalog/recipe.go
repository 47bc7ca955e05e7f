package catalog

import (
	"context"
	"sort"

	"udm/internal/apperr"
	"udm/internal/filter"
	"udm/internal/model"
	"udm/internal/query"
	"udm/internal/schema"
)

// AddRecipe inserts the recipe row and one join row per (position,
// instruction) pair in r.Instructions, inside a single transaction: spec.md
// §9 Open Question (a) names this the preferred resolution over the
// original best-effort sequence, since a join-row failure after a
// non-transactional recipe insert would leave an orphaned recipe with no
// way to compensate.
func (s *Service) AddRecipe(ctx context.Context, r model.Recipe) (int64, error) {
	tx, err := s.backend.BeginTx(ctx)
	if err != nil {
		return 0, err
	}

	id, err := tx.Insert(ctx, query.InsertRecipe(r))
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	for position, instr := range r.Instructions {
		order := model.RecipeInstructionOrder{RecipeID: id, InstructionID: instr.ID, Position: position}
		if _, err := tx.Insert(ctx, query.InsertRecipeInstructionOrder(order)); err != nil {
			tx.Rollback()
			return 0, apperr.Wrap(apperr.BackendError, "insert recipe instruction order", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.Wrap(apperr.BackendError, "commit add-recipe transaction", err)
	}
	return id, nil
}

// UpdateRecipe updates the recipe row only. Its instruction ordering is
// managed separately through UpdateRecipeInstructionOrders.
func (s *Service) UpdateRecipe(ctx context.Context, r model.Recipe) error {
	stmt, err := query.UpdateRecipe(r)
	if err != nil {
		return err
	}
	return s.backend.Update(ctx, stmt)
}

// RemoveRecipe deletes a recipe row by id. The DDL's cascading foreign key
// removes its recipe_instruction_orders rows along with it.
func (s *Service) RemoveRecipe(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, query.DeleteRecipe(id))
}

// CollectRecipes resolves filterText, selects the matching recipe rows,
// and for each one rehydrates its Instructions map from the join table
// (spec.md §4.5 collect-recipe).
func (s *Service) CollectRecipes(ctx context.Context, filterText string) ([]model.Recipe, error) {
	clauses, err := filter.Parse(schema.Recipes, filterText)
	if err != nil {
		return nil, err
	}
	rows, err := s.backend.Select(ctx, schema.Recipes, query.SelectWhere(schema.Recipes, clauses))
	if err != nil {
		return nil, err
	}
	recipes := make([]model.Recipe, len(rows))
	for i, r := range rows {
		recipes[i] = recipeFromRow(r)
		instructions, err := s.instructionsForRecipe(ctx, recipes[i].ID)
		if err != nil {
			return nil, err
		}
		recipes[i].Instructions = instructions
	}
	return recipes, nil
}

// instructionsForRecipe selects the recipe's join rows, sorts by position,
// and fetches each referenced Instruction, building the position ->
// Instruction map a Recipe carries on read.
func (s *Service) instructionsForRecipe(ctx context.Context, recipeID int64) (map[int]model.Instruction, error) {
	clause := filter.Clause{Column: schema.RecipeOrderRecipeID, Op: filter.OpEq, Values: int64sToStrings([]int64{recipeID})}
	rows, err := s.backend.Select(ctx, schema.RecipeInstructionOrders, query.SelectWhere(schema.RecipeInstructionOrders, []filter.Clause{clause}))
	if err != nil {
		return nil, err
	}

	orders := make([]model.RecipeInstructionOrder, len(rows))
	for i, r := range rows {
		orders[i] = recipeInstructionOrderFromRow(r)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Position < orders[j].Position })

	ids := make([]int64, 0, len(orders))
	seen := map[int64]bool{}
	for _, o := range orders {
		if o.InstructionID != 0 && !seen[o.InstructionID] {
			seen[o.InstructionID] = true
			ids = append(ids, o.InstructionID)
		}
	}
	instructions, err := s.fetchInstructionsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make(map[int]model.Instruction, len(orders))
	for _, o := range orders {
		if instr, ok := instructions[o.InstructionID]; ok {
			result[o.Position] = instr
		}
	}
	return result, nil
}
