package entity

import "time"

// Supplier representa un proveedor de materia prima.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Status        string // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
