package catalogclient_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"udm/internal/catalog"
	"udm/internal/catalog/catalogclient"
	catalogrpc "udm/internal/catalog/rpc"
	"udm/internal/model"
	"udm/internal/storage/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	b, err := sqlite.Open(ctx, path)
	if err != nil {
		t.Fatalf("open sqlite backend: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	if err := b.GenSchemaCatalog(ctx); err != nil {
		t.Fatalf("gen catalog schema: %v", err)
	}
	h := catalogrpc.NewHandler(catalog.New(b), nil)
	srv := httptest.NewServer(catalogrpc.NewRouter(h, nil))
	t.Cleanup(srv.Close)
	return srv
}

func TestAddAndCollectFluidRegulator(t *testing.T) {
	srv := newTestServer(t)
	client, err := catalogclient.New(catalogclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	pin := 4
	id, err := client.AddFluidRegulator(ctx, model.FluidRegulator{Kind: model.RegulatorPump, GPIOPin: &pin})
	if err != nil {
		t.Fatalf("AddFluidRegulator: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected nonzero id")
	}

	regs, err := client.CollectFluidRegulators(ctx, "")
	if err != nil {
		t.Fatalf("CollectFluidRegulators: %v", err)
	}
	if len(regs) != 1 || regs[0].ID != id {
		t.Fatalf("expected single regulator with id %d, got %+v", id, regs)
	}

	regs, err = client.CollectFluidRegulators(ctx, "pump_number=9")
	if err != nil {
		t.Fatalf("CollectFluidRegulators filtered: %v", err)
	}
	if len(regs) != 0 {
		t.Fatalf("expected 0 matches for unrelated pump_number filter, got %d", len(regs))
	}
}

func TestUpdateAndRemoveFluidRegulator(t *testing.T) {
	srv := newTestServer(t)
	client, err := catalogclient.New(catalogclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	id, err := client.AddFluidRegulator(ctx, model.FluidRegulator{Kind: model.RegulatorTap})
	if err != nil {
		t.Fatalf("AddFluidRegulator: %v", err)
	}

	pumpNumber := 3
	if err := client.UpdateFluidRegulator(ctx, model.FluidRegulator{ID: id, Kind: model.RegulatorPump, PumpNumber: &pumpNumber}); err != nil {
		t.Fatalf("UpdateFluidRegulator: %v", err)
	}

	if err := client.RemoveFluidRegulator(ctx, id); err != nil {
		t.Fatalf("RemoveFluidRegulator: %v", err)
	}

	regs, err := client.CollectFluidRegulators(ctx, "")
	if err != nil {
		t.Fatalf("CollectFluidRegulators: %v", err)
	}
	if len(regs) != 0 {
		t.Fatalf("expected 0 regulators after remove, got %d", len(regs))
	}
}

func TestUpdateUnknownFluidRegulatorFails(t *testing.T) {
	srv := newTestServer(t)
	client, err := catalogclient.New(catalogclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if err := client.UpdateFluidRegulator(ctx, model.FluidRegulator{ID: 999, Kind: model.RegulatorValve}); err == nil {
		t.Fatalf("expected error updating unknown fluid regulator")
	}
}
