package dto

import (
	"time"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// SetPositionRequest body para POST /api/inventory y PUT /api/inventory/update.
// camelCase: contrato heredado del frontend original.
type SetPositionRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Location  string `json:"location" validate:"required,max=255"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// PositionResponse una posición de inventario serializada.
type PositionResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	Location    string    `json:"location"`
	Quantity    int       `json:"quantity"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// ToPositionResponse mapea la entidad al DTO.
func ToPositionResponse(p *entity.InventoryPosition) PositionResponse {
	return PositionResponse{
		ID:          p.ID,
		ProductID:   p.ProductID,
		Location:    p.Location,
		Quantity:    p.Quantity,
		LastUpdated: p.UpdatedAt,
	}
}

// ToPositionResponses mapea un slice de posiciones.
func ToPositionResponses(list []*entity.InventoryPosition) []PositionResponse {
	out := make([]PositionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPositionResponse(p))
	}
	return out
}
