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
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

const productionColumns = `id, product_id, quantity, batch_number, operator, status, created_at, updated_at`

// ProductionRepo lotes de producción sobre PostgreSQL. Los ingredientes
// consumidos viven en production_ingredients.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

func scanProduction(row pgx.Row) (*entity.ProductionRecord, error) {
	var p entity.ProductionRecord
	err := row.Scan(&p.ID, &p.ProductID, &p.Quantity, &p.BatchNumber, &p.Operator, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductionRepo) loadIngredients(ctx context.Context, record *entity.ProductionRecord) error {
	query := `
		SELECT id, production_id, ingredient_id, ingredient_name, quantity
		FROM production_ingredients
		WHERE production_id = $1`
	rows, err := r.q.Query(ctx, query, record.ID)
	if err != nil {
		return fmt.Errorf("load production ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pi entity.ProductionIngredient
		if err := rows.Scan(&pi.ID, &pi.ProductionID, &pi.IngredientID, &pi.IngredientName, &pi.Quantity); err != nil {
			return fmt.Errorf("scan production ingredient: %w", err)
		}
		record.Ingredients = append(record.Ingredients, pi)
	}
	return rows.Err()
}

// Create persiste el lote y sus ingredientes consumidos.
func (r *ProductionRepo) Create(ctx context.Context, record *entity.ProductionRecord) error {
	query := `
		INSERT INTO production_records (` + productionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		record.ID, record.ProductID, record.Quantity, record.BatchNumber,
		record.Operator, record.Status, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production record: %w", err)
	}
	for _, pi := range record.Ingredients {
		_, err := r.q.Exec(ctx, `
			INSERT INTO production_ingredients (id, production_id, ingredient_id, ingredient_name, quantity)
			VALUES ($1, $2, $3, $4, $5)`,
			pi.ID, record.ID, pi.IngredientID, pi.IngredientName, pi.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert production ingredient: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un lote por ID con sus ingredientes.
func (r *ProductionRepo) GetByID(ctx context.Context, id string) (*entity.ProductionRecord, error) {
	record, err := scanProduction(r.q.QueryRow(ctx, `SELECT `+productionColumns+` FROM production_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production record: %w", err)
	}
	if err := r.loadIngredients(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetByBatchNumber obtiene un lote por su número único.
func (r *ProductionRepo) GetByBatchNumber(ctx context.Context, batch string) (*entity.ProductionRecord, error) {
	record, err := scanProduction(r.q.QueryRow(ctx, `SELECT `+productionColumns+` FROM production_records WHERE batch_number = $1`, batch))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production by batch: %w", err)
	}
	if err := r.loadIngredients(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List devuelve todos los lotes, más recientes primero, con sus ingredientes.
func (r *ProductionRepo) List(ctx context.Context) ([]*entity.ProductionRecord, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productionColumns+` FROM production_records ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list production records: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductionRecord
	for rows.Next() {
		record, err := scanProduction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production record: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, record := range out {
		if err := r.loadIngredients(ctx, record); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// UpdateStatus cambia solo el estado del lote.
func (r *ProductionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE production_records SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update production status: %w", err)
	}
	return nil
}

// Delete elimina un lote y sus ingredientes.
func (r *ProductionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM production_ingredients WHERE production_id = $1`, id); err != nil {
		return fmt.Errorf("delete production ingredients: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM production_records WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete production record: %w", err)
	}
	return nil
}

// SumCompletedByProduct suma la cantidad producida en lotes completed.
func (r *ProductionRepo) SumCompletedByProduct(ctx context.Context, productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0)
		FROM production_records
		WHERE product_id = $1 AND status = 'completed'`,
		productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum completed production: %w", err)
	}
	return total, nil
}
