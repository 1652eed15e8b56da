package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado vendible en POS (chorizo, jamón, etc.).
// El stock por ubicación vive en InventoryPosition, no aquí.
type Product struct {
	ID              string
	Name            string
	SKU             string // único
	CategoryID      string
	Price           decimal.Decimal
	Unit            string
	MinStockLevel   decimal.Decimal
	ReorderPoint    decimal.Decimal
	ReorderQuantity decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
