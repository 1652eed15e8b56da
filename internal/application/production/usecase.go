package production

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/application/ledger"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// FacilityLocation ubicación de inventario de la planta de producción.
const FacilityLocation = "Production Facility"

// UseCase lotes de producción: al completarse un lote, el inventario de la
// planta se sincroniza con la suma de lotes completados del producto.
type UseCase struct {
	txRunner       ledger.TxRunner
	productionRepo repository.ProductionRepository
	productRepo    repository.ProductRepository
	ingredientRepo repository.IngredientRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner ledger.TxRunner,
	productionRepo repository.ProductionRepository,
	productRepo repository.ProductRepository,
	ingredientRepo repository.IngredientRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		productionRepo: productionRepo,
		productRepo:    productRepo,
		ingredientRepo: ingredientRepo,
	}
}

// IngredientInput materia prima consumida por el lote.
type IngredientInput struct {
	IngredientID string
	Quantity     decimal.Decimal
}

// CreateInput entrada para registrar un lote.
type CreateInput struct {
	ProductID   string
	Quantity    decimal.Decimal
	BatchNumber string
	Operator    string
	Status      string
	Ingredients []IngredientInput
	UserID      string
	UserName    string
}

// Create registra un lote de producción. BatchNumber repetido devuelve
// ErrDuplicate. Si el lote nace completed, sincroniza el inventario de planta.
func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*entity.ProductionRecord, error) {
	if input.ProductID == "" || input.BatchNumber == "" {
		return nil, fmt.Errorf("productId y batchNumber son obligatorios: %w", domain.ErrInvalidInput)
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("quantity debe ser > 0: %w", domain.ErrInvalidInput)
	}
	status := input.Status
	if status == "" {
		status = entity.ProductionStatusInProgress
	}
	if !entity.IsValidProductionStatus(status) {
		return nil, fmt.Errorf("status %q: %w", status, domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.productionRepo.GetByBatchNumber(ctx, input.BatchNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	record := &entity.ProductionRecord{
		ID:          uuid.New().String(),
		ProductID:   input.ProductID,
		Quantity:    input.Quantity,
		BatchNumber: input.BatchNumber,
		Operator:    input.Operator,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, pi := range input.Ingredients {
		ing, err := uc.ingredientRepo.GetByID(ctx, pi.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		record.Ingredients = append(record.Ingredients, entity.ProductionIngredient{
			ID:             uuid.New().String(),
			ProductionID:   record.ID,
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			Quantity:       pi.Quantity,
		})
	}

	userName := input.UserName
	if userName == "" {
		userName = "System"
	}

	err = uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Production.Create(ctx, record); err != nil {
			return err
		}
		if status == entity.ProductionStatusCompleted {
			if err := uc.syncFacility(ctx, repos, input.ProductID, now); err != nil {
				return err
			}
		}
		details, _ := json.Marshal(map[string]interface{}{
			"batch_number": record.BatchNumber,
			"quantity":     record.Quantity,
			"status":       record.Status,
		})
		return repos.History.Create(ctx, &entity.SystemHistory{
			ID:        uuid.New().String(),
			Action:    "production_created",
			Entity:    entity.HistoryEntityProduction,
			EntityID:  record.ID,
			Details:   details,
			UserID:    input.UserID,
			UserName:  userName,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateStatus cambia el estado de un lote. Al pasar a completed sincroniza
// el inventario de planta en la misma transacción.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status, userID, userName string) (*entity.ProductionRecord, error) {
	if !entity.IsValidProductionStatus(status) {
		return nil, fmt.Errorf("status %q: %w", status, domain.ErrInvalidInput)
	}
	record, err := uc.productionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	// Un lote completado es definitivo.
	if record.Status == entity.ProductionStatusCompleted && status != entity.ProductionStatusCompleted {
		return nil, domain.ErrInvalidTransition
	}

	if userName == "" {
		userName = "System"
	}
	now := time.Now()

	err = uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Production.UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		if status == entity.ProductionStatusCompleted {
			if err := uc.syncFacility(ctx, repos, record.ProductID, now); err != nil {
				return err
			}
		}
		details, _ := json.Marshal(map[string]interface{}{
			"batch_number": record.BatchNumber,
			"status":       status,
		})
		return repos.History.Create(ctx, &entity.SystemHistory{
			ID:        uuid.New().String(),
			Action:    "production_status_changed",
			Entity:    entity.HistoryEntityProduction,
			EntityID:  record.ID,
			Details:   details,
			UserID:    userID,
			UserName:  userName,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	record.Status = status
	record.UpdatedAt = now
	return record, nil
}

// syncFacility fija la posición de planta del producto a la suma de lotes
// completed. Idempotente: recalcular dos veces deja el mismo valor.
func (uc *UseCase) syncFacility(ctx context.Context, repos repository.TxRepos, productID string, now time.Time) error {
	total, err := repos.Production.SumCompletedByProduct(ctx, productID)
	if err != nil {
		return err
	}
	return repos.Positions.Upsert(ctx, &entity.InventoryPosition{
		ID:        uuid.New().String(),
		ProductID: productID,
		Location:  FacilityLocation,
		Quantity:  int(total.IntPart()),
		UpdatedAt: now,
	})
}

// Delete elimina un lote y sus filas de ingredientes. Si el lote estaba
// completed, el inventario de planta se recalcula en la misma transacción.
func (uc *UseCase) Delete(ctx context.Context, id, userID, userName string) error {
	record, err := uc.productionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	if userName == "" {
		userName = "System"
	}
	now := time.Now()

	return uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Production.Delete(ctx, id); err != nil {
			return err
		}
		if record.Status == entity.ProductionStatusCompleted {
			if err := uc.syncFacility(ctx, repos, record.ProductID, now); err != nil {
				return err
			}
		}
		details, _ := json.Marshal(map[string]interface{}{
			"batch_number": record.BatchNumber,
		})
		return repos.History.Create(ctx, &entity.SystemHistory{
			ID:        uuid.New().String(),
			Action:    "production_deleted",
			Entity:    entity.HistoryEntityProduction,
			EntityID:  record.ID,
			Details:   details,
			UserID:    userID,
			UserName:  userName,
			CreatedAt: now,
		})
	})
}

// List devuelve todos los lotes.
func (uc *UseCase) List(ctx context.Context) ([]*entity.ProductionRecord, error) {
	return uc.productionRepo.List(ctx)
}

// Get devuelve un lote por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.ProductionRecord, error) {
	record, err := uc.productionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}
