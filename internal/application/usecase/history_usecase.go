package usecase

import (
	"context"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

const historyDefaultLimit = 100

// HistoryUseCase consulta del historial global de acciones.
type HistoryUseCase struct {
	repo repository.SystemHistoryRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.SystemHistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// List devuelve entradas del historial, más recientes primero. entityFilter
// vacío devuelve todas; un valor desconocido es entrada inválida.
func (uc *HistoryUseCase) List(ctx context.Context, entityFilter string, limit int) ([]dto.HistoryResponse, error) {
	switch entityFilter {
	case "", entity.HistoryEntitySale, entity.HistoryEntityInventory,
		entity.HistoryEntityProduction, entity.HistoryEntityIngredient,
		entity.HistoryEntityTransfer:
	default:
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > historyDefaultLimit {
		limit = historyDefaultLimit
	}
	list, err := uc.repo.List(ctx, entityFilter, limit)
	if err != nil {
		return nil, err
	}
	return dto.ToHistoryResponses(list), nil
}
