package dto

import (
	"time"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// SaveStoreRequest body para crear o actualizar una tienda.
type SaveStoreRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"omitempty,max=500"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Manager string `json:"manager" validate:"omitempty,max=255"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// StoreResponse una tienda serializada.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Manager   string    `json:"manager,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToStoreResponse mapea la entidad al DTO.
func ToStoreResponse(s *entity.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Manager:   s.Manager,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStoreResponses mapea un slice de tiendas.
func ToStoreResponses(list []*entity.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToStoreResponse(s))
	}
	return out
}
