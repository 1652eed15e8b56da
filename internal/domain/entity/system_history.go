package entity

import (
	"encoding/json"
	"time"
)

// Entidades conocidas para SystemHistory.Entity.
const (
	HistoryEntitySale       = "Sale"
	HistoryEntityInventory  = "Inventory"
	HistoryEntityProduction = "Production"
	HistoryEntityIngredient = "Ingredient"
	HistoryEntityTransfer   = "Transfer"
)

// SystemHistory es el registro global de acciones del sistema (solo-inserción).
type SystemHistory struct {
	ID        string
	Action    string
	Entity    string
	EntityID  string
	Details   json.RawMessage
	UserID    string // vacío para acciones del sistema
	UserName  string // "System" cuando no hay identidad
	CreatedAt time.Time
}
