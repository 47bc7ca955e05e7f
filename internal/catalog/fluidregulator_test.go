package catalog_test

import (
	"context"
	"testing"

	"udm/internal/apperr"
	"udm/internal/model"
)

func intPtr(i int) *int { return &i }

func TestFluidRegulatorAddUpdateRemove(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	id, err := s.AddFluidRegulator(ctx, model.FluidRegulator{
		Kind:    model.RegulatorPump,
		GPIOPin: intPtr(17),
	})
	if err != nil {
		t.Fatalf("AddFluidRegulator: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	err = s.UpdateFluidRegulator(ctx, model.FluidRegulator{
		ID:         id,
		Kind:       model.RegulatorValve,
		PumpNumber: intPtr(3),
	})
	if err != nil {
		t.Fatalf("UpdateFluidRegulator: %v", err)
	}

	regs, err := s.CollectFluidRegulators(ctx, "")
	if err != nil {
		t.Fatalf("CollectFluidRegulators: %v", err)
	}
	if len(regs) != 1 {
		t.Fatalf("expected 1 regulator, got %d", len(regs))
	}
	if regs[0].Kind != model.RegulatorValve {
		t.Errorf("expected updated kind valve, got %v", regs[0].Kind)
	}
	if regs[0].PumpNumber == nil || *regs[0].PumpNumber != 3 {
		t.Errorf("expected pump number 3, got %v", regs[0].PumpNumber)
	}

	if err := s.RemoveFluidRegulator(ctx, id); err != nil {
		t.Fatalf("RemoveFluidRegulator: %v", err)
	}
	regs, err = s.CollectFluidRegulators(ctx, "")
	if err != nil {
		t.Fatalf("CollectFluidRegulators after remove: %v", err)
	}
	if len(regs) != 0 {
		t.Fatalf("expected 0 regulators after remove, got %d", len(regs))
	}
}

func TestFluidRegulatorUpdateZeroIDFails(t *testing.T) {
	s := newTestService(t)
	err := s.UpdateFluidRegulator(context.Background(), model.FluidRegulator{Kind: model.RegulatorTap})
	if !apperr.Of(err, apperr.InvalidInput) {
		t.Fatalf("expected InvalidInput for zero id, got %v", err)
	}
}

func TestFluidRegulatorCollectFiltersByKind(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.AddFluidRegulator(ctx, model.FluidRegulator{Kind: model.RegulatorPump}); err != nil {
		t.Fatalf("AddFluidRegulator: %v", err)
	}
	if _, err := s.AddFluidRegulator(ctx, model.FluidRegulator{Kind: model.RegulatorTap}); err != nil {
		t.Fatalf("AddFluidRegulator: %v", err)
	}

	pumps, err := s.CollectFluidRegulators(ctx, "kind=1")
	if err != nil {
		t.Fatalf("CollectFluidRegulators: %v", err)
	}
	if len(pumps) != 1 {
		t.Fatalf("expected 1 pump, got %d", len(pumps))
	}
	if pumps[0].Kind != model.RegulatorPump {
		t.Errorf("expected pump, got %v", pumps[0].Kind)
	}
}
