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

// IngredientUseCase casos de uso CRUD para ingredientes. El stock solo se
// acepta en la creación; después se muta únicamente vía el libro de ajustes.
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// Create crea un ingrediente con su stock inicial.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	ing := &entity.Ingredient{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Code:          in.Code,
		Category:      in.Category,
		Unit:          in.Unit,
		Stock:         in.Stock,
		MinStockLevel: in.MinStockLevel,
		ReorderPoint:  in.ReorderPoint,
		CostPerUnit:   in.CostPerUnit,
		SupplierID:    in.SupplierID,
		ExpiryDate:    in.ExpiryDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	resp := dto.ToIngredientResponse(ing)
	return &resp, nil
}

// GetByID obtiene un ingrediente por ID.
func (uc *IngredientUseCase) GetByID(ctx context.Context, id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToIngredientResponse(ing)
	return &resp, nil
}

// List devuelve ingredientes; search filtra por nombre o código ignorando tildes.
func (uc *IngredientUseCase) List(ctx context.Context, search string) ([]dto.IngredientResponse, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	return dto.ToIngredientResponses(list), nil
}

// Update actualiza los datos maestros del ingrediente. El stock actual se
// conserva tal cual: un update genérico nunca lo toca.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != ing.Code {
		other, err := uc.repo.GetByCode(ctx, in.Code)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	ing.Name = in.Name
	ing.Code = in.Code
	ing.Category = in.Category
	ing.Unit = in.Unit
	ing.MinStockLevel = in.MinStockLevel
	ing.ReorderPoint = in.ReorderPoint
	ing.CostPerUnit = in.CostPerUnit
	ing.SupplierID = in.SupplierID
	ing.ExpiryDate = in.ExpiryDate
	ing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	resp := dto.ToIngredientResponse(ing)
	return &resp, nil
}

// Delete elimina un ingrediente.
func (uc *IngredientUseCase) Delete(ctx context.Context, id string) error {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// catálogo base que carga la pantalla de reinicio
var seedIngredients = []entity.Ingredient{
	{Name: "Carne de cerdo", Code: "CAR-01", Category: "carnes", Unit: "kg"},
	{Name: "Carne de res", Code: "CAR-02", Category: "carnes", Unit: "kg"},
	{Name: "Tocino", Code: "CAR-03", Category: "carnes", Unit: "kg"},
	{Name: "Tripa natural", Code: "TRI-01", Category: "empaques", Unit: "m"},
	{Name: "Sal", Code: "CON-01", Category: "condimentos", Unit: "kg"},
	{Name: "Pimentón", Code: "CON-02", Category: "condimentos", Unit: "kg"},
	{Name: "Ajo", Code: "CON-03", Category: "condimentos", Unit: "kg"},
	{Name: "Sal de cura", Code: "ADI-01", Category: "aditivos", Unit: "kg"},
}

// Reset borra el catálogo de ingredientes y lo vuelve a sembrar con el
// catálogo base, todo con stock en cero. Cualquier stock posterior entra
// por el libro de ajustes.
func (uc *IngredientUseCase) Reset(ctx context.Context) ([]dto.IngredientResponse, error) {
	current, err := uc.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, ing := range current {
		if err := uc.repo.Delete(ctx, ing.ID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	seeded := make([]*entity.Ingredient, 0, len(seedIngredients))
	for _, seed := range seedIngredients {
		ing := seed
		ing.ID = uuid.New().String()
		ing.CreatedAt = now
		ing.UpdatedAt = now
		if err := uc.repo.Create(ctx, &ing); err != nil {
			return nil, err
		}
		seeded = append(seeded, &ing)
	}
	return dto.ToIngredientResponses(seeded), nil
}
