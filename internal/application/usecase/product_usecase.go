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

// ProductUseCase casos de uso CRUD para productos terminados. El stock por
// ubicación vive en InventoryPosition y se maneja aparte.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. SKU repetido devuelve ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            in.Name,
		SKU:             in.SKU,
		CategoryID:      in.CategoryID,
		Price:           in.Price,
		Unit:            in.Unit,
		MinStockLevel:   in.MinStockLevel,
		ReorderPoint:    in.ReorderPoint,
		ReorderQuantity: in.ReorderQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// List devuelve productos; search filtra por nombre o SKU ignorando tildes.
func (uc *ProductUseCase) List(ctx context.Context, search string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(list), nil
}

// Update actualiza un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != product.SKU {
		other, err := uc.repo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	product.Name = in.Name
	product.SKU = in.SKU
	product.CategoryID = in.CategoryID
	product.Price = in.Price
	product.Unit = in.Unit
	product.MinStockLevel = in.MinStockLevel
	product.ReorderPoint = in.ReorderPoint
	product.ReorderQuantity = in.ReorderQuantity
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// DeleteAll elimina todos los productos (reset de catálogo).
func (uc *ProductUseCase) DeleteAll(ctx context.Context) error {
	return uc.repo.DeleteAll(ctx)
}
