package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// SaveProductRequest body para crear o actualizar un producto.
type SaveProductRequest struct {
	Name            string          `json:"name" validate:"required,max=255"`
	SKU             string          `json:"sku" validate:"required,max=64"`
	CategoryID      string          `json:"categoryId"`
	Price           decimal.Decimal `json:"price"`
	Unit            string          `json:"unit" validate:"omitempty,max=32"`
	MinStockLevel   decimal.Decimal `json:"minStockLevel"`
	ReorderPoint    decimal.Decimal `json:"reorderPoint"`
	ReorderQuantity decimal.Decimal `json:"reorderQuantity"`
}

// ProductResponse un producto serializado.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CategoryID      string          `json:"categoryId,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Unit            string          `json:"unit,omitempty"`
	MinStockLevel   decimal.Decimal `json:"minStockLevel"`
	ReorderPoint    decimal.Decimal `json:"reorderPoint"`
	ReorderQuantity decimal.Decimal `json:"reorderQuantity"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ToProductResponse mapea la entidad al DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             p.SKU,
		CategoryID:      p.CategoryID,
		Price:           p.Price,
		Unit:            p.Unit,
		MinStockLevel:   p.MinStockLevel,
		ReorderPoint:    p.ReorderPoint,
		ReorderQuantity: p.ReorderQuantity,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToProductResponses mapea un slice de productos.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}
