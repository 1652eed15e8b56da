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

// CategoryUseCase categorías de producto e ingrediente.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Nombre repetido dentro del mismo kind devuelve
// ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.List(ctx, in.Kind)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.Name == in.Name {
			return nil, domain.ErrDuplicate
		}
	}
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Kind:      in.Kind,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// List devuelve categorías; kind vacío devuelve todas.
func (uc *CategoryUseCase) List(ctx context.Context, kind string) ([]dto.CategoryResponse, error) {
	if kind != "" && kind != entity.CategoryKindProduct && kind != entity.CategoryKindIngredient {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponses(list), nil
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
