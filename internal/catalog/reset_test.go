package catalog_test

import (
	"context"
	"testing"

	"udm/internal/model"
)

func TestResetDBEmptiesEveryCatalogTable(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.AddInstruction(ctx, model.Instruction{Name: "stir", Detail: "stir gently"}); err != nil {
		t.Fatalf("AddInstruction: %v", err)
	}
	if _, err := s.AddFluidRegulator(ctx, model.FluidRegulator{Kind: model.RegulatorPump}); err != nil {
		t.Fatalf("AddFluidRegulator: %v", err)
	}

	if err := s.ResetDB(ctx); err != nil {
		t.Fatalf("ResetDB: %v", err)
	}

	instructions, err := s.CollectInstructions(ctx, "")
	if err != nil {
		t.Fatalf("CollectInstructions: %v", err)
	}
	if len(instructions) != 0 {
		t.Fatalf("expected 0 instructions after reset, got %d", len(instructions))
	}
	regulators, err := s.CollectFluidRegulators(ctx, "")
	if err != nil {
		t.Fatalf("CollectFluidRegulators: %v", err)
	}
	if len(regulators) != 0 {
		t.Fatalf("expected 0 regulators after reset, got %d", len(regulators))
	}
}
