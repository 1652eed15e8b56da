package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
	"github.com/jhoicas/carnicos-api/pkg/textutil"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = `id, name, code, category, unit, stock, min_stock_level, reorder_point, cost_per_unit, supplier_id, expiry_date, created_at, updated_at`

// IngredientRepo implementación del puerto IngredientRepository sobre
// PostgreSQL (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var i entity.Ingredient
	var supplierID *string
	err := row.Scan(
		&i.ID, &i.Name, &i.Code, &i.Category, &i.Unit, &i.Stock,
		&i.MinStockLevel, &i.ReorderPoint, &i.CostPerUnit,
		&supplierID, &i.ExpiryDate, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if supplierID != nil {
		i.SupplierID = *supplierID
	}
	return &i, nil
}

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ctx context.Context, ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (` + ingredientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		ing.ID, ing.Name, ing.Code, ing.Category, ing.Unit, ing.Stock,
		ing.MinStockLevel, ing.ReorderPoint, ing.CostPerUnit,
		nullable(ing.SupplierID), ing.ExpiryDate, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID.
func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	ing, err := scanIngredient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return ing, nil
}

// GetByCode obtiene un ingrediente por su código único.
func (r *IngredientRepo) GetByCode(ctx context.Context, code string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE code = $1`
	ing, err := scanIngredient(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient by code: %w", err)
	}
	return ing, nil
}

// List devuelve todos los ingredientes ordenados por nombre. search filtra
// por nombre o código ignorando mayúsculas y tildes; el filtro se aplica en
// memoria porque el catálogo de materia prima es pequeño y así "jamon"
// encuentra "Jamón" sin depender de la extensión unaccent.
func (r *IngredientRepo) List(ctx context.Context, search string) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		if search != "" && !textutil.ContainsFold(ing.Name, search) && !textutil.ContainsFold(ing.Code, search) {
			continue
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

// Update actualiza los datos maestros. No toca stock: eso es del libro de ajustes.
func (r *IngredientRepo) Update(ctx context.Context, ing *entity.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $2, code = $3, category = $4, unit = $5, min_stock_level = $6,
		    reorder_point = $7, cost_per_unit = $8, supplier_id = $9, expiry_date = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		ing.ID, ing.Name, ing.Code, ing.Category, ing.Unit, ing.MinStockLevel,
		ing.ReorderPoint, ing.CostPerUnit, nullable(ing.SupplierID), ing.ExpiryDate, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	return nil
}

// Delete elimina un ingrediente.
func (r *IngredientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}

// GetForUpdate bloquea la fila del ingrediente (SELECT FOR UPDATE) para que
// leer-calcular-escribir sea serial por ingrediente.
func (r *IngredientRepo) GetForUpdate(ctx context.Context, id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1 FOR UPDATE`
	ing, err := scanIngredient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock ingredient: %w", err)
	}
	return ing, nil
}

// UpdateStock escribe solo la columna stock (usado por el libro de ajustes,
// siempre dentro de una tx con la fila ya bloqueada).
func (r *IngredientRepo) UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE ingredients SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update ingredient stock: %w", err)
	}
	return nil
}
