package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

var _ repository.SystemHistoryRepository = (*SystemHistoryRepo)(nil)

// SystemHistoryRepo historial global de acciones sobre PostgreSQL
// (solo-inserción).
type SystemHistoryRepo struct {
	q Querier
}

// NewSystemHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSystemHistoryRepository(q Querier) *SystemHistoryRepo {
	return &SystemHistoryRepo{q: q}
}

// Create persiste una entrada del historial.
func (r *SystemHistoryRepo) Create(ctx context.Context, h *entity.SystemHistory) error {
	query := `
		INSERT INTO system_history (id, action, entity, entity_id, details, user_id, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.Action, h.Entity, nullable(h.EntityID), h.Details, nullable(h.UserID), h.UserName, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert system history: %w", err)
	}
	return nil
}

// List devuelve entradas más recientes primero; entityFilter vacío devuelve todas.
func (r *SystemHistoryRepo) List(ctx context.Context, entityFilter string, limit int) ([]*entity.SystemHistory, error) {
	query := `
		SELECT id, action, entity, entity_id, details, user_id, user_name, created_at
		FROM system_history
		WHERE ($1 = '' OR entity = $1)
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, entityFilter, limit)
	if err != nil {
		return nil, fmt.Errorf("list system history: %w", err)
	}
	defer rows.Close()

	var out []*entity.SystemHistory
	for rows.Next() {
		var h entity.SystemHistory
		var entityID, userID *string
		if err := rows.Scan(&h.ID, &h.Action, &h.Entity, &entityID, &h.Details, &userID, &h.UserName, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan system history: %w", err)
		}
		if entityID != nil {
			h.EntityID = *entityID
		}
		if userID != nil {
			h.UserID = *userID
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}
