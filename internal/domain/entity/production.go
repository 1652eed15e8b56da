package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote de producción.
const (
	ProductionStatusInProgress   = "in-progress"
	ProductionStatusQualityCheck = "quality-check"
	ProductionStatusCompleted    = "completed"
)

// IsValidProductionStatus reporta si s es un estado de producción conocido.
func IsValidProductionStatus(s string) bool {
	switch s {
	case ProductionStatusInProgress, ProductionStatusQualityCheck, ProductionStatusCompleted:
		return true
	}
	return false
}

// ProductionRecord representa un lote de producción de un producto terminado.
type ProductionRecord struct {
	ID          string
	ProductID   string
	Quantity    decimal.Decimal
	BatchNumber string // único
	Operator    string
	Status      string // in-progress | quality-check | completed
	Ingredients []ProductionIngredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductionIngredient es una materia prima consumida por un lote.
type ProductionIngredient struct {
	ID             string
	ProductionID   string
	IngredientID   string
	IngredientName string // denormalizado para el historial
	Quantity       decimal.Decimal
}
