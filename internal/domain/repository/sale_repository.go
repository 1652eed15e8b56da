package repository

import (
	"context"
	"time"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.Sale, error)
	// List devuelve ventas dentro de la ventana [from, to] (nil = sin límite).
	List(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error)
	Update(ctx context.Context, s *entity.Sale) error
}
