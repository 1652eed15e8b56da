package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

var _ repository.InventoryPositionRepository = (*InventoryPositionRepo)(nil)

// InventoryPositionRepo inventario de producto terminado por ubicación,
// único por (product_id, location).
type InventoryPositionRepo struct {
	q Querier
}

// NewInventoryPositionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryPositionRepository(q Querier) *InventoryPositionRepo {
	return &InventoryPositionRepo{q: q}
}

// List devuelve posiciones; location vacío devuelve todas.
func (r *InventoryPositionRepo) List(ctx context.Context, location string) ([]*entity.InventoryPosition, error) {
	query := `
		SELECT id, product_id, location, quantity, updated_at
		FROM inventory_positions
		WHERE ($1 = '' OR location = $1)
		ORDER BY location, product_id`
	rows, err := r.q.Query(ctx, query, location)
	if err != nil {
		return nil, fmt.Errorf("list inventory positions: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryPosition
	for rows.Next() {
		var p entity.InventoryPosition
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Location, &p.Quantity, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory position: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Get devuelve la posición de un producto en una ubicación (nil si no existe).
func (r *InventoryPositionRepo) Get(ctx context.Context, productID, location string) (*entity.InventoryPosition, error) {
	query := `
		SELECT id, product_id, location, quantity, updated_at
		FROM inventory_positions
		WHERE product_id = $1 AND location = $2`
	var p entity.InventoryPosition
	err := r.q.QueryRow(ctx, query, productID, location).Scan(
		&p.ID, &p.ProductID, &p.Location, &p.Quantity, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory position: %w", err)
	}
	return &p, nil
}

// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Si la posición no existe
// todavía devuelve una en cero, lista para el primer Upsert.
func (r *InventoryPositionRepo) GetForUpdate(ctx context.Context, productID, location string) (*entity.InventoryPosition, error) {
	query := `
		SELECT id, product_id, location, quantity, updated_at
		FROM inventory_positions
		WHERE product_id = $1 AND location = $2
		FOR UPDATE`
	var p entity.InventoryPosition
	err := r.q.QueryRow(ctx, query, productID, location).Scan(
		&p.ID, &p.ProductID, &p.Location, &p.Quantity, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryPosition{ProductID: productID, Location: location}, nil
		}
		return nil, fmt.Errorf("lock inventory position: %w", err)
	}
	return &p, nil
}

// Upsert inserta o actualiza la posición sobre (product_id, location).
// Idempotente: repetir la misma escritura deja el mismo estado y conserva el
// ID de la fila existente.
func (r *InventoryPositionRepo) Upsert(ctx context.Context, pos *entity.InventoryPosition) error {
	query := `
		INSERT INTO inventory_positions (id, product_id, location, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, location)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING id`
	if err := r.q.QueryRow(ctx, query,
		pos.ID, pos.ProductID, pos.Location, pos.Quantity, pos.UpdatedAt,
	).Scan(&pos.ID); err != nil {
		return fmt.Errorf("upsert inventory position: %w", err)
	}
	return nil
}
