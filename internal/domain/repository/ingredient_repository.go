package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para ingredientes.
// GetForUpdate existe para el libro de ajustes: bloquea la fila
// (SELECT FOR UPDATE) de modo que leer-calcular-escribir sea serial por
// ingrediente y no se pierdan actualizaciones concurrentes.
type IngredientRepository interface {
	Create(ctx context.Context, ing *entity.Ingredient) error
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error)
	GetByCode(ctx context.Context, code string) (*entity.Ingredient, error)
	// List devuelve todos los ingredientes; search filtra por nombre o código
	// ignorando tildes (vacío = sin filtro).
	List(ctx context.Context, search string) ([]*entity.Ingredient, error)
	Update(ctx context.Context, ing *entity.Ingredient) error
	Delete(ctx context.Context, id string) error
	GetForUpdate(ctx context.Context, id string) (*entity.Ingredient, error)
	UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error
}
