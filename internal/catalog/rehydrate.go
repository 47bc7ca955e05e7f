package catalog

import (
	"context"
	"strconv"

	"udm/internal/model"
)

// int64sToStrings renders ids for an OpIn filter.Clause, which carries
// its values as strings regardless of the column's underlying type.
func int64sToStrings(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}
	return out
}

// rehydrateIngredients substitutes the nested Regulator/Instruction
// pointers on every ingredient that carries a non-null regulator-id or
// instruction-id (spec.md §4.5 collect-ingredients). Ingredients with
// neither are returned unchanged.
func (s *Service) rehydrateIngredients(ctx context.Context, ings []model.Ingredient) ([]model.Ingredient, error) {
	var regulatorIDs, instructionIDs []int64
	seenRegulator := map[int64]bool{}
	seenInstruction := map[int64]bool{}
	for _, ing := range ings {
		if ing.RegulatorID != nil && !seenRegulator[*ing.RegulatorID] {
			seenRegulator[*ing.RegulatorID] = true
			regulatorIDs = append(regulatorIDs, *ing.RegulatorID)
		}
		if ing.InstructionID != nil && !seenInstruction[*ing.InstructionID] {
			seenInstruction[*ing.InstructionID] = true
			instructionIDs = append(instructionIDs, *ing.InstructionID)
		}
	}

	regulators, err := s.fetchFluidRegulatorsByID(ctx, regulatorIDs)
	if err != nil {
		return nil, err
	}
	instructions, err := s.fetchInstructionsByID(ctx, instructionIDs)
	if err != nil {
		return nil, err
	}

	for i := range ings {
		if ings[i].RegulatorID != nil {
			if r, ok := regulators[*ings[i].RegulatorID]; ok {
				rr := r
				ings[i].Regulator = &rr
			}
		}
		if ings[i].InstructionID != nil {
			if in, ok := instructions[*ings[i].InstructionID]; ok {
				ii := in
				ings[i].Instruction = &ii
			}
		}
	}
	return ings, nil
}
