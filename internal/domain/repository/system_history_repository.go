package repository

import (
	"context"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// SystemHistoryRepository define el puerto del historial global de acciones
// (solo-inserción).
type SystemHistoryRepository interface {
	Create(ctx context.Context, h *entity.SystemHistory) error
	// List devuelve entradas más recientes primero; entity vacío = todas.
	List(ctx context.Context, entityFilter string, limit int) ([]*entity.SystemHistory, error)
}
