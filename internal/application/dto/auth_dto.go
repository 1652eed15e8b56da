package dto

import (
	"time"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// LoginResponse token más el usuario autenticado.
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// CreateUserRequest body para POST /api/employees.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	FullName string `json:"fullName" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role" validate:"required,oneof=admin manager cashier employee"`
	StoreID  string `json:"storeId"`
}

// UpdateUserRequest body para PUT /api/employees/:id. Password vacío
// conserva la contraseña actual.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	FullName string `json:"fullName" validate:"required,max=255"`
	Password string `json:"password" validate:"omitempty,min=6,max=128"`
	Role     string `json:"role" validate:"required,oneof=admin manager cashier employee"`
	StoreID  string `json:"storeId"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UserResponse un usuario serializado (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	StoreID   string    `json:"storeId,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse mapea la entidad al DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		StoreID:   u.StoreID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses mapea un slice de usuarios.
func ToUserResponses(list []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUserResponse(u))
	}
	return out
}
