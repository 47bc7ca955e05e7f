package catalog

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"udm/internal/model"
	"udm/internal/schema"
	"udm/internal/storage"
)

// The storage layer hands back storage.Row values typed however the
// driver in play decoded them (int64/bool/float64 from lib/pq,
// int64/string from modernc.org/sqlite, since SQLite has no native
// boolean or timestamp type). These helpers normalize both shapes into
// the model's Go types; every entity's row-to-model function goes
// through them instead of asserting a concrete type directly.

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int32:
		return int64(x), true
	case float64:
		return int64(x), true
	case []byte:
		n, err := strconv.ParseInt(string(x), 10, 64)
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		return n, err == nil
	}
	return 0, false
}

func asIntPtr(v any) *int {
	n, ok := asInt64(v)
	if !ok {
		return nil
	}
	i := int(n)
	return &i
}

func asInt64Ptr(v any) *int64 {
	n, ok := asInt64(v)
	if !ok {
		return nil
	}
	return &n
}

func asBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case []byte:
		return string(x) == "1"
	case string:
		return x == "1" || x == "true"
	}
	return false
}

func asFloat64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case []byte:
		f, _ := strconv.ParseFloat(string(x), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(x, 64)
		return f
	}
	return 0
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	}
	return ""
}

func asTime(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case string:
		t, _ := time.Parse(time.RFC3339, x)
		return t
	case []byte:
		t, _ := time.Parse(time.RFC3339, string(x))
		return t
	}
	return time.Time{}
}

func asUUID(v any) uuid.UUID {
	switch x := v.(type) {
	case string:
		u, _ := uuid.Parse(x)
		return u
	case []byte:
		u, _ := uuid.Parse(string(x))
		return u
	}
	return uuid.UUID{}
}

func fluidRegulatorFromRow(r storage.Row) model.FluidRegulator {
	id, _ := asInt64(r[schema.FluidRegulatorID.Name])
	kind, _ := asInt64(r[schema.FluidRegulatorKind.Name])
	return model.FluidRegulator{
		ID:         id,
		Kind:       model.RegulatorKind(kind),
		GPIOPin:    asIntPtr(r[schema.FluidRegulatorGPIOPin.Name]),
		PumpNumber: asIntPtr(r[schema.FluidRegulatorPumpNumber.Name]),
	}
}

func instructionFromRow(r storage.Row) model.Instruction {
	id, _ := asInt64(r[schema.InstructionID.Name])
	return model.Instruction{
		ID:     id,
		Name:   asString(r[schema.InstructionName.Name]),
		Detail: asString(r[schema.InstructionDetail.Name]),
	}
}

func ingredientFromRow(r storage.Row) model.Ingredient {
	id, _ := asInt64(r[schema.IngredientID.Name])
	kind, _ := asInt64(r[schema.IngredientKind.Name])
	return model.Ingredient{
		ID:            id,
		Name:          asString(r[schema.IngredientName.Name]),
		Alcoholic:     asBool(r[schema.IngredientAlcoholic.Name]),
		Description:   asString(r[schema.IngredientDescription.Name]),
		IsActive:      asBool(r[schema.IngredientIsActive.Name]),
		Amount:        asFloat64(r[schema.IngredientAmount.Name]),
		Kind:          model.IngredientKind(kind),
		RegulatorID:   asInt64Ptr(r[schema.IngredientRegulatorID.Name]),
		InstructionID: asInt64Ptr(r[schema.IngredientInstructionID.Name]),
	}
}

func recipeFromRow(r storage.Row) model.Recipe {
	id, _ := asInt64(r[schema.RecipeID.Name])
	size, _ := asInt64(r[schema.RecipeDrinkSize.Name])
	return model.Recipe{
		ID:          id,
		Name:        asString(r[schema.RecipeName.Name]),
		DrinkSize:   model.DrinkSize(size),
		Description: asString(r[schema.RecipeDescription.Name]),
		UserInput:   asBool(r[schema.RecipeUserInput.Name]),
	}
}

func recipeInstructionOrderFromRow(r storage.Row) model.RecipeInstructionOrder {
	id, _ := asInt64(r[schema.RecipeOrderID.Name])
	recipeID, _ := asInt64(r[schema.RecipeOrderRecipeID.Name])
	instructionID, _ := asInt64(r[schema.RecipeOrderInstructionID.Name])
	position, _ := asInt64(r[schema.RecipeOrderPosition.Name])
	return model.RecipeInstructionOrder{
		ID:            id,
		RecipeID:      recipeID,
		InstructionID: instructionID,
		Position:      int(position),
	}
}
