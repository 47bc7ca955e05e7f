// Package schema is the registry of catalog/controller tables and
// columns. It is the single source of truth for on-wire column names,
// DDL, and the truncate-everything statement used by the catalog's
// factory-reset RPC. Nothing outside this package should spell a table
// or column name as a bare string literal.
package schema

import "fmt"

// Table identifies one of the six persisted tables.
type Table int

const (
	FluidRegulators Table = iota
	Instructions
	Ingredients
	Recipes
	RecipeInstructionOrders
	PumpLog
)

func (t Table) String() string {
	switch t {
	case FluidRegulators:
		return "fluid_regulators"
	case Instructions:
		return "instructions"
	case Ingredients:
		return "ingredients"
	case Recipes:
		return "recipes"
	case RecipeInstructionOrders:
		return "recipe_instruction_orders"
	case PumpLog:
		return "pump_log"
	default:
		return "unknown_table"
	}
}

// Column identifies one column of one table. The zero value is never
// valid; always obtain a Column from this package's exported constants
// or from StringToColumn.
type Column struct {
	Table Table
	Name  string
}

// ColumnToString returns the on-wire (snake_case) column name.
func ColumnToString(c Column) string { return c.Name }

// Columns for fluid_regulators.
var (
	FluidRegulatorID         = Column{FluidRegulators, "id"}
	FluidRegulatorKind       = Column{FluidRegulators, "kind"}
	FluidRegulatorGPIOPin    = Column{FluidRegulators, "gpio_pin"}
	FluidRegulatorPumpNumber = Column{FluidRegulators, "pump_number"}
)

// Columns for instructions.
var (
	InstructionID     = Column{Instructions, "id"}
	InstructionName   = Column{Instructions, "name"}
	InstructionDetail = Column{Instructions, "detail"}
)

// Columns for ingredients.
var (
	IngredientID            = Column{Ingredients, "id"}
	IngredientName          = Column{Ingredients, "name"}
	IngredientAlcoholic     = Column{Ingredients, "alcoholic"}
	IngredientDescription   = Column{Ingredients, "description"}
	IngredientIsActive      = Column{Ingredients, "is_active"}
	IngredientAmount        = Column{Ingredients, "amount"}
	IngredientKind          = Column{Ingredients, "kind"}
	IngredientRegulatorID   = Column{Ingredients, "regulator_id"}
	IngredientInstructionID = Column{Ingredients, "instruction_id"}
)

// Columns for recipes.
var (
	RecipeID          = Column{Recipes, "id"}
	RecipeName        = Column{Recipes, "name"}
	RecipeDrinkSize   = Column{Recipes, "drink_size"}
	RecipeDescription = Column{Recipes, "description"}
	RecipeUserInput   = Column{Recipes, "user_input"}
)

// Columns for recipe_instruction_orders.
var (
	RecipeOrderID            = Column{RecipeInstructionOrders, "id"}
	RecipeOrderRecipeID      = Column{RecipeInstructionOrders, "recipe_id"}
	RecipeOrderInstructionID = Column{RecipeInstructionOrders, "instruction_id"}
	RecipeOrderPosition      = Column{RecipeInstructionOrders, "position"}
)

// Columns for pump_log.
var (
	PumpLogRequestID   = Column{PumpLog, "request_id"}
	PumpLogRequestKind = Column{PumpLog, "request_kind"}
	PumpLogFluidID     = Column{PumpLog, "fluid_id"}
	PumpLogCreatedAt   = Column{PumpLog, "created_at"}
)

// columnsByTable lists every column of a table in declaration order, used
// both for StringToColumn lookup and for INSERT/SELECT column lists.
var columnsByTable = map[Table][]Column{
	FluidRegulators: {FluidRegulatorID, FluidRegulatorKind, FluidRegulatorGPIOPin, FluidRegulatorPumpNumber},
	Instructions:    {InstructionID, InstructionName, InstructionDetail},
	Ingredients: {
		IngredientID, IngredientName, IngredientAlcoholic, IngredientDescription,
		IngredientIsActive, IngredientAmount, IngredientKind, IngredientRegulatorID, IngredientInstructionID,
	},
	Recipes:                 {RecipeID, RecipeName, RecipeDrinkSize, RecipeDescription, RecipeUserInput},
	RecipeInstructionOrders: {RecipeOrderID, RecipeOrderRecipeID, RecipeOrderInstructionID, RecipeOrderPosition},
	PumpLog:                 {PumpLogRequestID, PumpLogRequestKind, PumpLogFluidID, PumpLogCreatedAt},
}

// Columns returns every column of table, in declaration order.
func Columns(table Table) []Column {
	return columnsByTable[table]
}

// StringToColumn is the inverse of ColumnToString, scoped to one table.
// It fails with "unknown column" for anything not in that table's enum —
// this, together with the Op whitelist in package filter, is the sole
// line of defence against SQL injection through the filter surface
// (spec.md §4.3 "Security contract").
func StringToColumn(table Table, name string) (Column, error) {
	for _, c := range columnsByTable[table] {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, fmt.Errorf("unknown column %q on table %s", name, table)
}

// AllTables lists every table, in an order safe for truncation (children
// before parents is unnecessary here since truncate clears every table,
// but insertion-dependency order is preserved for readability).
func AllTables() []Table {
	return []Table{FluidRegulators, Instructions, Ingredients, Recipes, RecipeInstructionOrders, PumpLog}
}

// CatalogTables are the five tables owned by the catalog daemon.
func CatalogTables() []Table {
	return []Table{FluidRegulators, Instructions, Ingredients, Recipes, RecipeInstructionOrders}
}

// ControllerTables are the tables owned by the drink controller daemon.
func ControllerTables() []Table {
	return []Table{PumpLog}
}
