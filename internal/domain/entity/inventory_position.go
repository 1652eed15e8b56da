package entity

import "time"

// InventoryPosition es la cantidad de un producto en una ubicación concreta
// (tienda o planta). Única por (product_id, location); actualizar una
// ubicación nunca afecta a otra.
type InventoryPosition struct {
	ID        string
	ProductID string
	Location  string // clave libre: nombre de tienda o "Production Facility"
	Quantity  int    // siempre >= 0
	UpdatedAt time.Time
}
