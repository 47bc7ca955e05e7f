package rpc_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"udm/internal/catalog"
	"udm/internal/catalog/rpc"
	"udm/internal/model"
	"udm/internal/storage/sqlite"
)

func newTestRouter(t *testing.T) http.Handler {
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
	h := rpc.NewHandler(catalog.New(b), nil)
	return rpc.NewRouter(h, nil)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddCollectUpdateRemoveInstruction(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/instructions/", model.Instruction{Name: "stir", Detail: "stir gently"})
	if rec.Code != http.StatusOK {
		t.Fatalf("add instruction: status %d body %s", rec.Code, rec.Body.String())
	}
	var added struct{ ID int64 }
	if err := json.Unmarshal(rec.Body.Bytes(), &added); err != nil {
		t.Fatalf("decode add response: %v", err)
	}
	if added.ID == 0 {
		t.Fatalf("expected nonzero id")
	}

	rec = doJSON(t, router, http.MethodGet, "/instructions/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("collect instructions: status %d", rec.Code)
	}
	var collected []model.Instruction
	if err := json.Unmarshal(rec.Body.Bytes(), &collected); err != nil {
		t.Fatalf("decode collect response: %v", err)
	}
	if len(collected) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(collected))
	}

	rec = doJSON(t, router, http.MethodPatch, "/instructions/"+strconv.FormatInt(added.ID, 10), model.Instruction{Name: "shake", Detail: "shake hard"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update instruction: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodDelete, "/instructions/"+strconv.FormatInt(added.ID, 10), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove instruction: status %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/instructions/", nil)
	collected = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &collected); err != nil {
		t.Fatalf("decode collect response: %v", err)
	}
	if len(collected) != 0 {
		t.Fatalf("expected 0 instructions after remove, got %d", len(collected))
	}
}

func TestUpdateUnknownInstructionReturns400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/instructions/999", model.Instruction{Name: "x", Detail: "y"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Kind != "invalid_input" {
		t.Fatalf("expected kind invalid_input, got %q", body.Kind)
	}
}

func TestResetDB(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/instructions/", model.Instruction{Name: "stir", Detail: "stir gently"})

	rec := doJSON(t, router, http.MethodPost, "/reset-db", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset-db: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/instructions/", nil)
	var collected []model.Instruction
	if err := json.Unmarshal(rec.Body.Bytes(), &collected); err != nil {
		t.Fatalf("decode collect response: %v", err)
	}
	if len(collected) != 0 {
		t.Fatalf("expected 0 instructions after reset, got %d", len(collected))
	}
}
