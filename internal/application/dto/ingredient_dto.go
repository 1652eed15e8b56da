package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// CreateIngredientRequest body para POST /api/ingredients. El stock inicial
// se acepta solo en la creación; después el stock solo cambia vía ajustes.
type CreateIngredientRequest struct {
	Name          string          `json:"name" validate:"required,max=255"`
	Code          string          `json:"code" validate:"required,max=64"`
	Category      string          `json:"category" validate:"omitempty,max=255"`
	Unit          string          `json:"unit" validate:"required,max=32"`
	Stock         decimal.Decimal `json:"stock"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
	ReorderPoint  decimal.Decimal `json:"reorderPoint"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	SupplierID    string          `json:"supplierId"`
	ExpiryDate    *time.Time      `json:"expiryDate"`
}

// UpdateIngredientRequest body para PUT /api/ingredients/:id.
// No incluye Stock: el stock solo se muta a través del libro de ajustes.
type UpdateIngredientRequest struct {
	Name          string          `json:"name" validate:"required,max=255"`
	Code          string          `json:"code" validate:"required,max=64"`
	Category      string          `json:"category" validate:"omitempty,max=255"`
	Unit          string          `json:"unit" validate:"required,max=32"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
	ReorderPoint  decimal.Decimal `json:"reorderPoint"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	SupplierID    string          `json:"supplierId"`
	ExpiryDate    *time.Time      `json:"expiryDate"`
}

// IngredientResponse un ingrediente serializado.
type IngredientResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Category      string          `json:"category,omitempty"`
	Unit          string          `json:"unit"`
	Stock         decimal.Decimal `json:"stock"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
	ReorderPoint  decimal.Decimal `json:"reorderPoint"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	SupplierID    string          `json:"supplierId,omitempty"`
	ExpiryDate    *time.Time      `json:"expiryDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToIngredientResponse mapea la entidad al DTO.
func ToIngredientResponse(i *entity.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:            i.ID,
		Name:          i.Name,
		Code:          i.Code,
		Category:      i.Category,
		Unit:          i.Unit,
		Stock:         i.Stock,
		MinStockLevel: i.MinStockLevel,
		ReorderPoint:  i.ReorderPoint,
		CostPerUnit:   i.CostPerUnit,
		SupplierID:    i.SupplierID,
		ExpiryDate:    i.ExpiryDate,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// ToIngredientResponses mapea un slice de ingredientes.
func ToIngredientResponses(list []*entity.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(list))
	for _, i := range list {
		out = append(out, ToIngredientResponse(i))
	}
	return out
}
