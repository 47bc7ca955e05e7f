package schema

import (
	"fmt"
	"strings"
)

// Dialect selects the DDL/type-name flavor emitted for a backend. The
// query and filter packages stay dialect-free (they only ever deal in
// Columns and positional placeholders); dialect only matters here and in
// the storage adapters' placeholder rewriting.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

type colType struct {
	pg     string
	sqlite string
}

var columnTypes = map[Column]colType{
	FluidRegulatorID:         {"bigserial primary key", "integer primary key autoincrement"},
	FluidRegulatorKind:       {"integer not null default 0", "integer not null default 0"},
	FluidRegulatorGPIOPin:    {"integer", "integer"},
	FluidRegulatorPumpNumber: {"integer", "integer"},

	InstructionID:     {"bigserial primary key", "integer primary key autoincrement"},
	InstructionName:   {"text not null", "text not null"},
	InstructionDetail: {"text not null", "text not null"},

	IngredientID:            {"bigserial primary key", "integer primary key autoincrement"},
	IngredientName:          {"text not null", "text not null"},
	IngredientAlcoholic:     {"boolean not null default false", "integer not null default 0"},
	IngredientDescription:   {"text not null default ''", "text not null default ''"},
	IngredientIsActive:      {"boolean not null default true", "integer not null default 1"},
	IngredientAmount:        {"double precision not null default 0", "real not null default 0"},
	IngredientKind:          {"integer not null default 0", "integer not null default 0"},
	IngredientRegulatorID:   {"bigint references fluid_regulators(id) on delete set null", "integer references fluid_regulators(id) on delete set null"},
	IngredientInstructionID: {"bigint references instructions(id) on delete set null", "integer references instructions(id) on delete set null"},

	RecipeID:          {"bigserial primary key", "integer primary key autoincrement"},
	RecipeName:        {"text not null unique", "text not null unique"},
	RecipeDrinkSize:   {"integer not null default 0", "integer not null default 0"},
	RecipeDescription: {"text not null unique", "text not null unique"},
	RecipeUserInput:   {"boolean not null default false", "integer not null default 0"},

	RecipeOrderID:            {"bigserial primary key", "integer primary key autoincrement"},
	RecipeOrderRecipeID:      {"bigint not null references recipes(id) on delete cascade", "integer not null references recipes(id) on delete cascade"},
	RecipeOrderInstructionID: {"bigint references instructions(id) on delete set null", "integer references instructions(id) on delete set null"},
	RecipeOrderPosition:      {"integer not null", "integer not null"},

	PumpLogRequestID:   {"uuid primary key", "text primary key"},
	PumpLogRequestKind: {"integer not null default 0", "integer not null default 0"},
	PumpLogFluidID:     {"bigint", "integer"},
	PumpLogCreatedAt:   {"timestamptz not null default now()", "text not null"},
}

func typeFor(c Column, d Dialect) string {
	t, ok := columnTypes[c]
	if !ok {
		return "text"
	}
	if d == DialectSQLite {
		return t.sqlite
	}
	return t.pg
}

// CreateTableDDL emits an idempotent CREATE TABLE for table under dialect.
func CreateTableDDL(table Table, d Dialect) string {
	cols := Columns(table)
	lines := make([]string, 0, len(cols))
	for _, c := range cols {
		lines = append(lines, fmt.Sprintf("\t%s %s", c.Name, typeFor(c, d)))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)", table, strings.Join(lines, ",\n"))
}

// AddColumnDDL emits an additive ALTER TABLE for a single new column.
// Migration is additive-only (spec.md §6): there is no DROP COLUMN here.
func AddColumnDDL(c Column, d Dialect) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", c.Table, c.Name, typeFor(c, d))
}

// CreateCatalogSchemaDDL returns one statement per catalog table.
func CreateCatalogSchemaDDL(d Dialect) []string {
	stmts := make([]string, 0, len(CatalogTables()))
	for _, t := range CatalogTables() {
		stmts = append(stmts, CreateTableDDL(t, d))
	}
	return stmts
}

// CreateControllerSchemaDDL returns one statement per controller table.
func CreateControllerSchemaDDL(d Dialect) []string {
	stmts := make([]string, 0, len(ControllerTables()))
	for _, t := range ControllerTables() {
		stmts = append(stmts, CreateTableDDL(t, d))
	}
	return stmts
}

// TruncateStatements returns one DELETE-all statement per table, in an
// order safe under foreign keys (children before parents). TRUNCATE
// itself is avoided because the embedded SQLite backend has no such
// statement; DELETE FROM is portable across both dialects and the tables
// are small enough that the performance gap does not matter.
func TruncateStatements() []string {
	order := []Table{RecipeInstructionOrders, Recipes, Ingredients, Instructions, FluidRegulators, PumpLog}
	stmts := make([]string, 0, len(order))
	for _, t := range order {
		stmts = append(stmts, fmt.Sprintf("DELETE FROM %s", t))
	}
	return stmts
}
