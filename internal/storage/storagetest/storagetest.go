// Package storagetest provides a shared conformance test suite for
// storage.Backend implementations. Each backend (postgres, sqlite) wires
// this suite to verify it satisfies the full Backend contract (spec.md
// §4.4, §8 testable properties) without duplicating the test bodies.
package storagetest

import (
	"context"
	"testing"

	"udm/internal/apperr"
	"udm/internal/filter"
	"udm/internal/model"
	"udm/internal/query"
	"udm/internal/schema"
	"udm/internal/storage"
)

// TestBackend runs the full conformance suite against a Backend
// implementation. newBackend must return a freshly schema'd, empty
// backend for each sub-test.
func TestBackend(t *testing.T, newBackend func(t *testing.T) storage.Backend) {
	t.Run("InsertAssignsID", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		id := insertInstruction(t, ctx, b, "stir", "stir gently")
		if id == 0 {
			t.Fatal("expected non-zero id")
		}
	})

	t.Run("SelectReturnsInsertedRow", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		insertInstruction(t, ctx, b, "shake", "shake vigorously")

		rows, err := b.Select(ctx, schema.Instructions, query.SelectWhere(schema.Instructions, nil))
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0][schema.InstructionName.Name] != "shake" {
			t.Errorf("got name %v, want shake", rows[0][schema.InstructionName.Name])
		}
	})

	t.Run("UpdateExistingRow", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		id := insertInstruction(t, ctx, b, "pour", "pour slowly")

		stmt, err := query.UpdateInstruction(instructionOf(id, "pour", "pour very slowly"))
		if err != nil {
			t.Fatalf("build update: %v", err)
		}
		if err := b.Update(ctx, stmt); err != nil {
			t.Fatalf("update: %v", err)
		}

		rows, err := b.Select(ctx, schema.Instructions, query.SelectWhere(schema.Instructions, nil))
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if rows[0][schema.InstructionDetail.Name] != "pour very slowly" {
			t.Errorf("got detail %v, want updated text", rows[0][schema.InstructionDetail.Name])
		}
	})

	t.Run("UpdateNonexistentRowFails", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		stmt, err := query.UpdateInstruction(instructionOf(99999, "x", "y"))
		if err != nil {
			t.Fatalf("build update: %v", err)
		}
		err = b.Update(ctx, stmt)
		if !apperr.Of(err, apperr.InvalidInput) {
			t.Fatalf("expected InvalidInput for update of nonexistent row, got %v", err)
		}
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		id := insertInstruction(t, ctx, b, "garnish", "add a lime wedge")

		if err := b.Delete(ctx, query.DeleteInstruction(id)); err != nil {
			t.Fatalf("first delete: %v", err)
		}
		if err := b.Delete(ctx, query.DeleteInstruction(id)); err != nil {
			t.Fatalf("second delete on already-gone row should not error: %v", err)
		}
	})

	t.Run("TruncateSchemaEmptiesAllTables", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		insertInstruction(t, ctx, b, "muddle", "muddle the mint")

		if err := b.TruncateSchema(ctx); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		rows, err := b.Select(ctx, schema.Instructions, query.SelectWhere(schema.Instructions, nil))
		if err != nil {
			t.Fatalf("select after truncate: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected 0 rows after truncate, got %d", len(rows))
		}
	})

	t.Run("TransactionRollsBackOnError", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		tx, err := b.BeginTx(ctx)
		if err != nil {
			t.Fatalf("begin tx: %v", err)
		}
		if _, err := tx.Insert(ctx, query.InsertInstruction(instructionOf(0, "temp", "temp detail"))); err != nil {
			t.Fatalf("insert in tx: %v", err)
		}
		if err := tx.Rollback(); err != nil {
			t.Fatalf("rollback: %v", err)
		}

		rows, err := b.Select(ctx, schema.Instructions, query.SelectWhere(schema.Instructions, nil))
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected rollback to discard the insert, got %d rows", len(rows))
		}
	})

	t.Run("TransactionCommitsOnSuccess", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		tx, err := b.BeginTx(ctx)
		if err != nil {
			t.Fatalf("begin tx: %v", err)
		}
		if _, err := tx.Insert(ctx, query.InsertInstruction(instructionOf(0, "committed", "stays"))); err != nil {
			t.Fatalf("insert in tx: %v", err)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("commit: %v", err)
		}

		rows, err := b.Select(ctx, schema.Instructions, query.SelectWhere(schema.Instructions, nil))
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected the committed row to be visible, got %d rows", len(rows))
		}
	})

	t.Run("FilteredSelectNarrowsResults", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		insertInstruction(t, ctx, b, "stir", "stir gently")
		insertInstruction(t, ctx, b, "shake", "shake vigorously")

		clauses, err := filterByName("shake")
		if err != nil {
			t.Fatalf("parse filter: %v", err)
		}
		rows, err := b.Select(ctx, schema.Instructions, query.SelectWhere(schema.Instructions, clauses))
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
	})

	t.Run("ListTablesReportsSchema", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		names, err := b.ListTables(ctx)
		if err != nil {
			t.Fatalf("list tables: %v", err)
		}
		if len(names) == 0 {
			t.Fatal("expected at least one table after GenSchemaCatalog")
		}
	})
}

func insertInstruction(t *testing.T, ctx context.Context, b storage.Backend, name, detail string) int64 {
	t.Helper()
	id, err := b.Insert(ctx, query.InsertInstruction(model.Instruction{Name: name, Detail: detail}))
	if err != nil {
		t.Fatalf("insert instruction: %v", err)
	}
	return id
}

func instructionOf(id int64, name, detail string) model.Instruction {
	return model.Instruction{ID: id, Name: name, Detail: detail}
}

func filterByName(name string) ([]filter.Clause, error) {
	return filter.Parse(schema.Instructions, "name="+name)
}
