package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// ProductionRepository define el puerto de persistencia para lotes de producción.
type ProductionRepository interface {
	// Create persiste el lote y sus ingredientes consumidos.
	Create(ctx context.Context, r *entity.ProductionRecord) error
	GetByID(ctx context.Context, id string) (*entity.ProductionRecord, error)
	GetByBatchNumber(ctx context.Context, batch string) (*entity.ProductionRecord, error)
	List(ctx context.Context) ([]*entity.ProductionRecord, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	// SumCompletedByProduct devuelve la cantidad total producida en lotes
	// completed para un producto (sincronización de inventario de planta).
	SumCompletedByProduct(ctx context.Context, productID string) (decimal.Decimal, error)
}
