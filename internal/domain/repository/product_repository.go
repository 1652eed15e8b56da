package repository

import (
	"context"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos terminados.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context, search string) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
