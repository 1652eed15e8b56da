package repository

import (
	"context"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// CategoryRepository define el puerto para categorías de producto e ingrediente.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	List(ctx context.Context, kind string) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
