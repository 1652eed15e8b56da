package repository

import (
	"context"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// InventoryPositionRepository define el puerto para el stock de producto
// terminado por ubicación. Upsert es idempotente sobre (product_id, location).
type InventoryPositionRepository interface {
	List(ctx context.Context, location string) ([]*entity.InventoryPosition, error)
	Get(ctx context.Context, productID, location string) (*entity.InventoryPosition, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); devuelve
	// una posición en cero si no existe todavía.
	GetForUpdate(ctx context.Context, productID, location string) (*entity.InventoryPosition, error)
	Upsert(ctx context.Context, pos *entity.InventoryPosition) error
}
