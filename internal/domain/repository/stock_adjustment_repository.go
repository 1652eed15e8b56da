package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// AdjustmentFilter filtros opcionales para listar ajustes de stock.
type AdjustmentFilter struct {
	IngredientID string
	Type         string
	UserID       string
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
}

// AdjustmentSummary agregados del libro de ajustes en una ventana de fechas.
type AdjustmentSummary struct {
	TotalAdditions   decimal.Decimal
	TotalRemovals    decimal.Decimal
	TotalAdjustments int
	NetChange        decimal.Decimal
}

// StockAdjustmentRepository define el puerto del libro de ajustes.
// Solo-inserción: no hay Update ni Delete, el ajuste es el registro de
// auditoría definitivo.
type StockAdjustmentRepository interface {
	Create(ctx context.Context, adj *entity.StockAdjustment) error
	// ListByIngredient devuelve los ajustes de un ingrediente, más recientes
	// primero, acotados por limit.
	ListByIngredient(ctx context.Context, ingredientID string, limit int) ([]*entity.StockAdjustment, error)
	List(ctx context.Context, f AdjustmentFilter) ([]*entity.StockAdjustment, int, error)
	Summary(ctx context.Context, from, to *time.Time) (*AdjustmentSummary, error)
	Recent(ctx context.Context, limit int) ([]*entity.StockAdjustment, error)
}
