package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// AdjustStockRequest body para POST /api/stock-adjustments.
// El contrato usa snake_case (heredado del API original).
type AdjustStockRequest struct {
	IngredientID string          `json:"ingredient_id" validate:"required"`
	Type         string          `json:"type" validate:"required,oneof=add remove"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       string          `json:"reason" validate:"omitempty,max=1000"`
	UserID       string          `json:"user_id"`
	UserName     string          `json:"user_name" validate:"omitempty,max=255"`
}

// AdjustmentResponse un ajuste de stock serializado.
type AdjustmentResponse struct {
	ID             string          `json:"id"`
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	IngredientCode string          `json:"ingredient_code"`
	Type           string          `json:"type"`
	Quantity       decimal.Decimal `json:"quantity"`
	PreviousStock  decimal.Decimal `json:"previous_stock"`
	NewStock       decimal.Decimal `json:"new_stock"`
	Unit           string          `json:"unit"`
	Reason         string          `json:"reason,omitempty"`
	UserID         string          `json:"user_id,omitempty"`
	UserName       string          `json:"user_name"`
	IPAddress      string          `json:"ip_address,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AdjustStockResponse respuesta 201 de un ajuste: el registro creado más el
// ingrediente con su stock resultante.
type AdjustStockResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Adjustment AdjustmentResponse `json:"adjustment"`
	Ingredient struct {
		ID    string          `json:"id"`
		Name  string          `json:"name"`
		Stock decimal.Decimal `json:"stock"`
	} `json:"ingredient"`
}

// AdjustmentListResponse listado de ajustes con paginación.
type AdjustmentListResponse struct {
	Success     bool                 `json:"success"`
	Adjustments []AdjustmentResponse `json:"adjustments"`
	Pagination  struct {
		Total   int `json:"total"`
		PerPage int `json:"per_page"`
		Offset  int `json:"offset"`
	} `json:"pagination"`
}

// AdjustmentSummaryResponse agregados del libro de ajustes.
type AdjustmentSummaryResponse struct {
	Success bool `json:"success"`
	Summary struct {
		TotalAdditions   decimal.Decimal `json:"total_additions"`
		TotalRemovals    decimal.Decimal `json:"total_removals"`
		TotalAdjustments int             `json:"total_adjustments"`
		NetChange        decimal.Decimal `json:"net_change"`
	} `json:"summary"`
	Recent []AdjustmentResponse `json:"recent"`
}

// ToAdjustmentResponse mapea la entidad al DTO.
func ToAdjustmentResponse(a *entity.StockAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:             a.ID,
		IngredientID:   a.IngredientID,
		IngredientName: a.IngredientName,
		IngredientCode: a.IngredientCode,
		Type:           a.Type,
		Quantity:       a.Quantity,
		PreviousStock:  a.PreviousStock,
		NewStock:       a.NewStock,
		Unit:           a.Unit,
		Reason:         a.Reason,
		UserID:         a.UserID,
		UserName:       a.UserName,
		IPAddress:      a.IPAddress,
		CreatedAt:      a.CreatedAt,
	}
}

// ToAdjustmentResponses mapea un slice de entidades.
func ToAdjustmentResponses(list []*entity.StockAdjustment) []AdjustmentResponse {
	out := make([]AdjustmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToAdjustmentResponse(a))
	}
	return out
}
