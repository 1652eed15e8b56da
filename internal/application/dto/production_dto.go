package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// ProductionIngredientInput una materia prima consumida por el lote.
type ProductionIngredientInput struct {
	IngredientID string          `json:"ingredientId" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CreateProductionRequest body para POST /api/production.
type CreateProductionRequest struct {
	ProductID   string                      `json:"productId" validate:"required"`
	Quantity    decimal.Decimal             `json:"quantity"`
	BatchNumber string                      `json:"batchNumber" validate:"required,max=64"`
	Operator    string                      `json:"operator" validate:"omitempty,max=255"`
	Status      string                      `json:"status" validate:"omitempty,oneof=in-progress quality-check completed"`
	Ingredients []ProductionIngredientInput `json:"ingredients" validate:"omitempty,dive"`
}

// UpdateProductionStatusRequest body para PATCH /api/production/:id/status.
type UpdateProductionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in-progress quality-check completed"`
}

// ProductionIngredientResponse materia prima consumida, serializada.
type ProductionIngredientResponse struct {
	ID             string          `json:"id"`
	IngredientID   string          `json:"ingredientId"`
	IngredientName string          `json:"ingredientName"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// ProductionResponse un lote de producción serializado.
type ProductionResponse struct {
	ID          string                         `json:"id"`
	ProductID   string                         `json:"productId"`
	Quantity    decimal.Decimal                `json:"quantity"`
	BatchNumber string                         `json:"batchNumber"`
	Operator    string                         `json:"operator,omitempty"`
	Status      string                         `json:"status"`
	Ingredients []ProductionIngredientResponse `json:"ingredients"`
	CreatedAt   time.Time                      `json:"createdAt"`
	UpdatedAt   time.Time                      `json:"updatedAt"`
}

// ToProductionResponse mapea la entidad al DTO.
func ToProductionResponse(p *entity.ProductionRecord) ProductionResponse {
	ings := make([]ProductionIngredientResponse, 0, len(p.Ingredients))
	for _, pi := range p.Ingredients {
		ings = append(ings, ProductionIngredientResponse{
			ID:             pi.ID,
			IngredientID:   pi.IngredientID,
			IngredientName: pi.IngredientName,
			Quantity:       pi.Quantity,
		})
	}
	return ProductionResponse{
		ID:          p.ID,
		ProductID:   p.ProductID,
		Quantity:    p.Quantity,
		BatchNumber: p.BatchNumber,
		Operator:    p.Operator,
		Status:      p.Status,
		Ingredients: ings,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductionResponses mapea un slice de lotes.
func ToProductionResponses(list []*entity.ProductionRecord) []ProductionResponse {
	out := make([]ProductionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductionResponse(p))
	}
	return out
}
