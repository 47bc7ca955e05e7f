package catalog

import (
	"context"

	"udm/internal/filter"
	"udm/internal/model"
	"udm/internal/query"
	"udm/internal/schema"
)

// AddRecipeInstructionOrder inserts a single join row and returns its
// assigned id.
func (s *Service) AddRecipeInstructionOrder(ctx context.Context, o model.RecipeInstructionOrder) (int64, error) {
	return s.backend.Insert(ctx, query.InsertRecipeInstructionOrder(o))
}

// RemoveRecipeInstructionOrder deletes a single join row by its own id.
func (s *Service) RemoveRecipeInstructionOrder(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, query.DeleteRecipeInstructionOrder(id))
}

// CollectRecipeInstructionOrders resolves filterText against the join
// table's column enum and returns every matching row, unsorted.
func (s *Service) CollectRecipeInstructionOrders(ctx context.Context, filterText string) ([]model.RecipeInstructionOrder, error) {
	clauses, err := filter.Parse(schema.RecipeInstructionOrders, filterText)
	if err != nil {
		return nil, err
	}
	rows, err := s.backend.Select(ctx, schema.RecipeInstructionOrders, query.SelectWhere(schema.RecipeInstructionOrders, clauses))
	if err != nil {
		return nil, err
	}
	out := make([]model.RecipeInstructionOrder, len(rows))
	for i, r := range rows {
		out[i] = recipeInstructionOrderFromRow(r)
	}
	return out, nil
}

// UpdateRecipeInstructionOrders de-duplicates the submitted list on the
// (id, recipe, instruction, position) quadruple, then issues one update
// per unique entry (spec.md §4.5 update-recipe-instruction-order).
func (s *Service) UpdateRecipeInstructionOrders(ctx context.Context, orders []model.RecipeInstructionOrder) error {
	type key struct {
		id, recipeID, instructionID int64
		position                    int
	}
	seen := make(map[key]bool, len(orders))
	for _, o := range orders {
		k := key{o.ID, o.RecipeID, o.InstructionID, o.Position}
		if seen[k] {
			continue
		}
		seen[k] = true

		stmt, err := query.UpdateRecipeInstructionOrder(o)
		if err != nil {
			return err
		}
		if err := s.backend.Update(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
