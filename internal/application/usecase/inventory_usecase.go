package usecase

import (
	"context"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// InventoryUseCase lectura del inventario por ubicación. Las escrituras pasan
// por ledger.SetPosition.
type InventoryUseCase struct {
	repo repository.InventoryPositionRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryPositionRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List devuelve posiciones; location vacío devuelve todas.
func (uc *InventoryUseCase) List(ctx context.Context, location string) ([]dto.PositionResponse, error) {
	list, err := uc.repo.List(ctx, location)
	if err != nil {
		return nil, err
	}
	return dto.ToPositionResponses(list), nil
}

// Get devuelve la posición de un producto en una ubicación.
func (uc *InventoryUseCase) Get(ctx context.Context, productID, location string) (*dto.PositionResponse, error) {
	pos, err := uc.repo.Get(ctx, productID, location)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToPositionResponse(pos)
	return &resp, nil
}
