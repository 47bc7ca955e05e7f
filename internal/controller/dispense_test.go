package controller_test

import (
	"context"
	"testing"

	"udm/internal/controller"
)

func TestDispenseDrinkWritesPumpLogRow(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	fluidID := int64(7)
	resp, err := svc.DispenseDrink(ctx, controller.DispenseRequest{FluidID: &fluidID})
	if err != nil {
		t.Fatalf("DispenseDrink: %v", err)
	}
	if resp.RequestID.String() == "" {
		t.Fatalf("expected nonempty request id")
	}
}

func TestCleanCycleWritesPumpLogRow(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.CleanCycle(ctx, controller.CleanRequest{})
	if err != nil {
		t.Fatalf("CleanCycle: %v", err)
	}
	if resp.RequestID.String() == "" {
		t.Fatalf("expected nonempty request id")
	}
}
