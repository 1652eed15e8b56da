package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleCashier  = "cashier"
	RoleEmployee = "employee"
)

// User representa un usuario del sistema (administrador o empleado de tienda).
type User struct {
	ID           string
	Username     string // único
	FullName     string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Role         string // admin, manager, cashier, employee
	StoreID      string // vacío para usuarios sin tienda asignada
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
