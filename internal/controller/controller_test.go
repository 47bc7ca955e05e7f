package controller_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"udm/internal/catalog"
	"udm/internal/catalog/catalogclient"
	catalogrpc "udm/internal/catalog/rpc"
	"udm/internal/controller"
	"udm/internal/controller/gpio"
	"udm/internal/storage"
	"udm/internal/storage/sqlite"
)

// newTestService wires a controller.Service over a fresh sqlite backend
// (catalog schema + controller schema in the same file, as a real
// deployment's single-process test fixture would) and a catalogclient
// pointed at an in-process httptest catalog RPC server.
func newTestService(t *testing.T) (*controller.Service, storage.Backend, *catalogclient.Client) {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "udm.db")

	catalogBackend, err := sqlite.Open(ctx, path)
	if err != nil {
		t.Fatalf("open catalog backend: %v", err)
	}
	t.Cleanup(func() { catalogBackend.Close() })
	if err := catalogBackend.GenSchemaCatalog(ctx); err != nil {
		t.Fatalf("gen catalog schema: %v", err)
	}

	h := catalogrpc.NewHandler(catalog.New(catalogBackend), nil)
	srv := httptest.NewServer(catalogrpc.NewRouter(h, nil))
	t.Cleanup(srv.Close)

	client, err := catalogclient.New(catalogclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new catalogclient: %v", err)
	}

	controllerPath := filepath.Join(t.TempDir(), "controller.db")
	controllerBackend, err := sqlite.Open(ctx, controllerPath)
	if err != nil {
		t.Fatalf("open controller backend: %v", err)
	}
	t.Cleanup(func() { controllerBackend.Close() })
	if err := controllerBackend.GenSchemaController(ctx); err != nil {
		t.Fatalf("gen controller schema: %v", err)
	}

	svc := controller.New(controllerBackend, client, gpio.NewSimulator())
	return svc, controllerBackend, client
}
