package dto

import (
	"time"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// SaveSupplierRequest body para crear o actualizar un proveedor.
type SaveSupplierRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	ContactPerson string `json:"contactPerson" validate:"omitempty,max=255"`
	Phone         string `json:"phone" validate:"omitempty,max=32"`
	Email         string `json:"email" validate:"omitempty,email,max=255"`
	Address       string `json:"address" validate:"omitempty,max=500"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// SupplierResponse un proveedor serializado.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToSupplierResponse mapea la entidad al DTO.
func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSupplierResponses mapea un slice de proveedores.
func ToSupplierResponses(list []*entity.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSupplierResponse(s))
	}
	return out
}
