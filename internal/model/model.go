// Package model defines the catalog and controller domain entities.
//
// Cross-entity relationships are expressed by id, never by embedding an
// owning pointer back to the referencing row: an Ingredient holds a
// *RegulatorID, not a pointer to a shared Regulator value, and the
// service layer rehydrates nested records on read. This keeps the graph
// acyclic and keeps entities serializable independent of each other.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RegulatorKind enumerates the physical device a FluidRegulator drives.
type RegulatorKind int

const (
	RegulatorUnspecified RegulatorKind = iota
	RegulatorPump
	RegulatorTap
	RegulatorValve
)

func (k RegulatorKind) String() string {
	switch k {
	case RegulatorPump:
		return "pump"
	case RegulatorTap:
		return "tap"
	case RegulatorValve:
		return "valve"
	default:
		return "unspecified"
	}
}

// IngredientKind enumerates what an Ingredient physically is.
type IngredientKind int

const (
	IngredientUnspecified IngredientKind = iota
	IngredientEatables
	IngredientFluid
)

func (k IngredientKind) String() string {
	switch k {
	case IngredientEatables:
		return "eatables"
	case IngredientFluid:
		return "fluid"
	default:
		return "unspecified"
	}
}

// DrinkSize enumerates the pour sizes a Recipe can be made in.
type DrinkSize int

const (
	DrinkSizeUnspecified DrinkSize = iota
	DrinkSizeSmall
	DrinkSizeMedium
	DrinkSizePint
	DrinkSizeLarge
	DrinkSizeExtraLarge
)

func (s DrinkSize) String() string {
	switch s {
	case DrinkSizeSmall:
		return "small"
	case DrinkSizeMedium:
		return "medium"
	case DrinkSizePint:
		return "pint"
	case DrinkSizeLarge:
		return "large"
	case DrinkSizeExtraLarge:
		return "extra_large"
	default:
		return "unspecified"
	}
}

// RequestKind enumerates the controller actions the pump-log records.
type RequestKind int

const (
	RequestUnspecified RequestKind = iota
	RequestDispense
	RequestCleaning
	RequestGetPumpInfo
	RequestPolling
	RequestEmergencyStop
)

func (k RequestKind) String() string {
	switch k {
	case RequestDispense:
		return "dispense"
	case RequestCleaning:
		return "cleaning"
	case RequestGetPumpInfo:
		return "get_pump_info"
	case RequestPolling:
		return "polling"
	case RequestEmergencyStop:
		return "emergency_stop"
	default:
		return "unspecified"
	}
}

// FluidRegulator is a pump, tap, or valve bound to a GPIO pin.
type FluidRegulator struct {
	ID         int64 `json:"id"`
	Kind       RegulatorKind `json:"kind"`
	GPIOPin    *int  `json:"gpio_pin,omitempty"`
	PumpNumber *int  `json:"pump_number,omitempty"`
}

// Instruction is a named textual step.
type Instruction struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// Ingredient is a standalone component of a recipe, optionally bound to a
// regulator (how it's dispensed) and an instruction (how it's prepared).
type Ingredient struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Alcoholic     bool            `json:"alcoholic"`
	Description   string          `json:"description"`
	IsActive      bool            `json:"is_active"`
	Amount        float64         `json:"amount"`
	Kind          IngredientKind  `json:"kind"`
	RegulatorID   *int64          `json:"regulator_id,omitempty"`
	Regulator     *FluidRegulator `json:"regulator,omitempty"` // rehydrated on read
	InstructionID *int64          `json:"instruction_id,omitempty"`
	Instruction   *Instruction    `json:"instruction,omitempty"` // rehydrated on read
}

// Recipe is a named, sized drink description with an ordered instruction
// list. Instructions is populated by position -> Instruction on read; on
// write it is the caller's desired ordering.
type Recipe struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	DrinkSize    DrinkSize            `json:"drink_size"`
	Description  string               `json:"description"`
	UserInput    bool                 `json:"user_input"`
	Instructions map[int]Instruction  `json:"instructions,omitempty"`
}

// RecipeInstructionOrder is the join row backing Recipe.Instructions.
type RecipeInstructionOrder struct {
	ID            int64 `json:"id"`
	RecipeID      int64 `json:"recipe_id"`
	InstructionID int64 `json:"instruction_id"`
	Position      int   `json:"position"`
}

// PumpLog is an append-only audit row for every controller action.
type PumpLog struct {
	RequestID   uuid.UUID   `json:"request_id"`
	RequestKind RequestKind `json:"request_kind"`
	FluidID     *int64      `json:"fluid_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
