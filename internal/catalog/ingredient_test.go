package catalog_test

import (
	"context"
	"testing"

	"udm/internal/model"
)

func int64Ptr(i int64) *int64 { return &i }

func TestIngredientCollectRehydratesRegulatorAndInstruction(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	regID, err := s.AddFluidRegulator(ctx, model.FluidRegulator{Kind: model.RegulatorPump, GPIOPin: intPtr(4)})
	if err != nil {
		t.Fatalf("AddFluidRegulator: %v", err)
	}
	instrID, err := s.AddInstruction(ctx, model.Instruction{Name: "pour", Detail: "pour over ice"})
	if err != nil {
		t.Fatalf("AddInstruction: %v", err)
	}

	ingID, err := s.AddIngredient(ctx, model.Ingredient{
		Name:          "rum",
		Alcoholic:     true,
		Kind:          model.IngredientFluid,
		RegulatorID:   int64Ptr(regID),
		InstructionID: int64Ptr(instrID),
	})
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}

	// plain ingredient with no links, to confirm it passes through unchanged
	if _, err := s.AddIngredient(ctx, model.Ingredient{Name: "lime wedge", Kind: model.IngredientEatables}); err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}

	ings, err := s.CollectIngredients(ctx, "")
	if err != nil {
		t.Fatalf("CollectIngredients: %v", err)
	}
	if len(ings) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(ings))
	}

	var rum *model.Ingredient
	for i := range ings {
		if ings[i].ID == ingID {
			rum = &ings[i]
		}
	}
	if rum == nil {
		t.Fatal("could not find rum ingredient in results")
	}
	if rum.Regulator == nil || rum.Regulator.ID != regID {
		t.Fatalf("expected rehydrated regulator %d, got %v", regID, rum.Regulator)
	}
	if rum.Instruction == nil || rum.Instruction.ID != instrID {
		t.Fatalf("expected rehydrated instruction %d, got %v", instrID, rum.Instruction)
	}
}

func TestIngredientUpdateCascadesToEmbeddedRegulator(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	regID, err := s.AddFluidRegulator(ctx, model.FluidRegulator{Kind: model.RegulatorPump})
	if err != nil {
		t.Fatalf("AddFluidRegulator: %v", err)
	}
	ingID, err := s.AddIngredient(ctx, model.Ingredient{Name: "vodka", Kind: model.IngredientFluid, RegulatorID: int64Ptr(regID)})
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}

	updated := model.Ingredient{
		ID:          ingID,
		Name:        "vodka",
		Kind:        model.IngredientFluid,
		RegulatorID: int64Ptr(regID),
		Regulator:   &model.FluidRegulator{ID: regID, Kind: model.RegulatorValve, PumpNumber: intPtr(7)},
	}
	if err := s.UpdateIngredient(ctx, updated, true, false); err != nil {
		t.Fatalf("UpdateIngredient: %v", err)
	}

	regs, err := s.CollectFluidRegulators(ctx, "")
	if err != nil {
		t.Fatalf("CollectFluidRegulators: %v", err)
	}
	if len(regs) != 1 || regs[0].Kind != model.RegulatorValve {
		t.Fatalf("expected regulator updated to valve, got %+v", regs)
	}
}

func TestIngredientUpdateWithoutFlagLeavesRegulatorUntouched(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	regID, err := s.AddFluidRegulator(ctx, model.FluidRegulator{Kind: model.RegulatorPump})
	if err != nil {
		t.Fatalf("AddFluidRegulator: %v", err)
	}
	ingID, err := s.AddIngredient(ctx, model.Ingredient{Name: "gin", Kind: model.IngredientFluid, RegulatorID: int64Ptr(regID)})
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}

	updated := model.Ingredient{
		ID:          ingID,
		Name:        "gin",
		Kind:        model.IngredientFluid,
		RegulatorID: int64Ptr(regID),
		Regulator:   &model.FluidRegulator{ID: regID, Kind: model.RegulatorValve},
	}
	if err := s.UpdateIngredient(ctx, updated, false, false); err != nil {
		t.Fatalf("UpdateIngredient: %v", err)
	}

	regs, err := s.CollectFluidRegulators(ctx, "")
	if err != nil {
		t.Fatalf("CollectFluidRegulators: %v", err)
	}
	if len(regs) != 1 || regs[0].Kind != model.RegulatorPump {
		t.Fatalf("expected regulator to stay pump without the flag, got %+v", regs)
	}
}
