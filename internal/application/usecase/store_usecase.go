package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una tienda.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.SaveStoreRequest) (*dto.StoreResponse, error) {
	status := in.Status
	if status == "" {
		status = "active"
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Manager:   in.Manager,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	resp := dto.ToStoreResponse(store)
	return &resp, nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToStoreResponse(store)
	return &resp, nil
}

// List devuelve todas las tiendas.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToStoreResponses(list), nil
}

// Update actualiza una tienda.
func (uc *StoreUseCase) Update(ctx context.Context, id string, in dto.SaveStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	store.Name = in.Name
	store.Address = in.Address
	store.Phone = in.Phone
	store.Manager = in.Manager
	if in.Status != "" {
		store.Status = in.Status
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	resp := dto.ToStoreResponse(store)
	return &resp, nil
}

// Delete elimina una tienda.
func (uc *StoreUseCase) Delete(ctx context.Context, id string) error {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
