package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa una materia prima de la planta (carne, especias, tripa, etc.).
// Stock es la cantidad autoritativa y solo se muta a través del libro de ajustes
// (ledger.Adjust); nunca por escritura directa desde un update genérico.
type Ingredient struct {
	ID            string
	Name          string
	Code          string // código estable, único
	Category      string
	Unit          string          // kg, unidades, litros...
	Stock         decimal.Decimal // siempre >= 0
	MinStockLevel decimal.Decimal
	ReorderPoint  decimal.Decimal
	CostPerUnit   decimal.Decimal
	SupplierID    string     // vacío si no tiene proveedor asignado
	ExpiryDate    *time.Time // nil si no aplica
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
