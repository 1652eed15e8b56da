package repository

import (
	"context"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para traslados.
type TransferRepository interface {
	Create(ctx context.Context, t *entity.Transfer) error
	GetByID(ctx context.Context, id string) (*entity.Transfer, error)
	// GetForUpdate bloquea la fila del traslado durante el cambio de estado.
	GetForUpdate(ctx context.Context, id string) (*entity.Transfer, error)
	List(ctx context.Context) ([]*entity.Transfer, error)
	Update(ctx context.Context, t *entity.Transfer) error
}
