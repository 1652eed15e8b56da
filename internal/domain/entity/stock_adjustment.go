package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ajuste de stock. Union de dos variantes: cualquier otro valor es entrada inválida.
const (
	AdjustmentTypeAdd    = "add"    // suma al stock
	AdjustmentTypeRemove = "remove" // resta del stock (acotado en cero)
)

// IsValidAdjustmentType reporta si s es uno de los tipos de ajuste conocidos.
func IsValidAdjustmentType(s string) bool {
	return s == AdjustmentTypeAdd || s == AdjustmentTypeRemove
}

// StockAdjustment es el registro de auditoría de un cambio de stock: inmutable,
// solo-inserción, nunca se edita ni se borra. Name/Code/Unit se copian del
// ingrediente en el momento del ajuste para que un rename posterior no
// corrompa el historial.
type StockAdjustment struct {
	ID             string
	IngredientID   string
	IngredientName string
	IngredientCode string
	Type           string          // add | remove
	Quantity       decimal.Decimal // magnitud, siempre > 0
	PreviousStock  decimal.Decimal // stock inmediatamente antes del ajuste
	NewStock       decimal.Decimal // max(0, PreviousStock ± Quantity)
	Unit           string
	Reason         string // texto libre, opcional
	UserID         string // vacío si no hay usuario autenticado
	UserName       string // "System" cuando no hay identidad
	IPAddress      string
	CreatedAt      time.Time
}
