package catalog_test

import (
	"context"
	"path/filepath"
	"testing"

	"udm/internal/catalog"
	"udm/internal/storage/sqlite"
)

func newTestService(t *testing.T) *catalog.Service {
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
	if err := b.GenSchemaController(ctx); err != nil {
		t.Fatalf("gen controller schema: %v", err)
	}
	return catalog.New(b)
}
