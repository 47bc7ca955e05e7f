package catalog

import (
	"context"

	"udm/internal/filter"
	"udm/internal/model"
	"udm/internal/query"
	"udm/internal/schema"
)

// AddIngredient inserts an ingredient row and returns its assigned id.
func (s *Service) AddIngredient(ctx context.Context, ing model.Ingredient) (int64, error) {
	return s.backend.Insert(ctx, query.InsertIngredient(ing))
}

// UpdateIngredient updates the ingredient row. If updateRegulator is set
// and ing.Regulator is embedded, the regulator row is updated after it;
// symmetrically for updateInstruction and ing.Instruction (spec.md §4.5
// update-ingredient).
func (s *Service) UpdateIngredient(ctx context.Context, ing model.Ingredient, updateRegulator, updateInstruction bool) error {
	stmt, err := query.UpdateIngredient(ing)
	if err != nil {
		return err
	}
	if err := s.backend.Update(ctx, stmt); err != nil {
		return err
	}
	if updateRegulator && ing.Regulator != nil {
		if err := s.UpdateFluidRegulator(ctx, *ing.Regulator); err != nil {
			return err
		}
	}
	if updateInstruction && ing.Instruction != nil {
		if err := s.UpdateInstruction(ctx, *ing.Instruction); err != nil {
			return err
		}
	}
	return nil
}

// RemoveIngredient deletes an ingredient row by id. Idempotent.
func (s *Service) RemoveIngredient(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, query.DeleteIngredient(id))
}

// CollectIngredients resolves filterText, selects the matching rows, and
// rehydrates each one's Regulator/Instruction from its nullable foreign
// keys (spec.md §4.5 collect-ingredients).
func (s *Service) CollectIngredients(ctx context.Context, filterText string) ([]model.Ingredient, error) {
	clauses, err := filter.Parse(schema.Ingredients, filterText)
	if err != nil {
		return nil, err
	}
	rows, err := s.backend.Select(ctx, schema.Ingredients, query.SelectWhere(schema.Ingredients, clauses))
	if err != nil {
		return nil, err
	}
	ings := make([]model.Ingredient, len(rows))
	for i, r := range rows {
		ings[i] = ingredientFromRow(r)
	}
	return s.rehydrateIngredients(ctx, ings)
}
