package entity

import "time"

// Store representa una tienda o punto de venta.
type Store struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Manager   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
