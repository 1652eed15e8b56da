package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// Límites del historial y del resumen.
const (
	historyMaxLimit = 100
	listDefaultSize = 50
	recentCount     = 10
)

// UseCase es el libro de ajustes de stock: toda mutación de Ingredient.Stock
// pasa por aquí, de forma transaccional y con bloqueo de fila.
type UseCase struct {
	txRunner       TxRunner
	ingredientRepo repository.IngredientRepository
	adjustmentRepo repository.StockAdjustmentRepository
	positionRepo   repository.InventoryPositionRepository
	productRepo    repository.ProductRepository
	notifier       Notifier
}

// NewUseCase construye el caso de uso. notifier puede ser nil.
func NewUseCase(
	txRunner TxRunner,
	ingredientRepo repository.IngredientRepository,
	adjustmentRepo repository.StockAdjustmentRepository,
	positionRepo repository.InventoryPositionRepository,
	productRepo repository.ProductRepository,
	notifier Notifier,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		ingredientRepo: ingredientRepo,
		adjustmentRepo: adjustmentRepo,
		positionRepo:   positionRepo,
		productRepo:    productRepo,
		notifier:       notifier,
	}
}

// AdjustInput entrada para registrar un ajuste de stock.
type AdjustInput struct {
	IngredientID string
	Type         string // add | remove
	Quantity     decimal.Decimal
	Reason       string
	UserID       string
	UserName     string
	IPAddress    string
}

// Adjust registra un ajuste de stock de un ingrediente: en una misma
// transacción bloquea la fila del ingrediente (SELECT FOR UPDATE), calcula
// el nuevo stock acotado en cero y escribe el stock y el registro de
// auditoría. PreviousStock del registro es siempre el stock inmediatamente
// anterior: dos ajustes concurrentes sobre el mismo ingrediente se serializan
// por el bloqueo de fila y ninguno se pierde.
func (uc *UseCase) Adjust(ctx context.Context, input AdjustInput) (*entity.StockAdjustment, *entity.Ingredient, error) {
	if input.IngredientID == "" {
		return nil, nil, fmt.Errorf("ingredient_id: %w", domain.ErrInvalidInput)
	}
	if !entity.IsValidAdjustmentType(input.Type) {
		return nil, nil, fmt.Errorf("type %q: %w", input.Type, domain.ErrInvalidInput)
	}
	// La magnitud es estrictamente positiva; cero y negativo se rechazan
	// antes de tocar nada.
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, nil, fmt.Errorf("quantity debe ser > 0: %w", domain.ErrInvalidInput)
	}

	userName := input.UserName
	if userName == "" {
		userName = "System"
	}

	var (
		adj *entity.StockAdjustment
		ing *entity.Ingredient
	)
	err := uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		locked, err := repos.Ingredients.GetForUpdate(ctx, input.IngredientID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		prev := locked.Stock
		var next decimal.Decimal
		if input.Type == entity.AdjustmentTypeAdd {
			next = prev.Add(input.Quantity)
		} else {
			next = prev.Sub(input.Quantity)
			if next.LessThan(decimal.Zero) {
				next = decimal.Zero
			}
		}

		if err := repos.Ingredients.UpdateStock(ctx, locked.ID, next); err != nil {
			return err
		}

		now := time.Now()
		adj = &entity.StockAdjustment{
			ID:             uuid.New().String(),
			IngredientID:   locked.ID,
			IngredientName: locked.Name,
			IngredientCode: locked.Code,
			Type:           input.Type,
			Quantity:       input.Quantity,
			PreviousStock:  prev,
			NewStock:       next,
			Unit:           locked.Unit,
			Reason:         input.Reason,
			UserID:         input.UserID,
			UserName:       userName,
			IPAddress:      input.IPAddress,
			CreatedAt:      now,
		}
		if err := repos.Adjustments.Create(ctx, adj); err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]interface{}{
			"type":           input.Type,
			"quantity":       input.Quantity,
			"previous_stock": prev,
			"new_stock":      next,
			"reason":         input.Reason,
		})
		hist := &entity.SystemHistory{
			ID:        uuid.New().String(),
			Action:    "stock_adjustment",
			Entity:    entity.HistoryEntityIngredient,
			EntityID:  locked.ID,
			Details:   details,
			UserID:    input.UserID,
			UserName:  userName,
			CreatedAt: now,
		}
		if err := repos.History.Create(ctx, hist); err != nil {
			return err
		}

		locked.Stock = next
		locked.UpdatedAt = now
		ing = locked
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifyStockUpdate(ing.ID, ing.Stock)
	}
	return adj, ing, nil
}

// SetPositionInput entrada para fijar la cantidad de un producto en una ubicación.
type SetPositionInput struct {
	ProductID string
	Location  string
	Quantity  int
	UserID    string
	UserName  string
}

// SetPosition fija (upsert idempotente) la cantidad absoluta de un producto
// en una ubicación. Rechaza cantidades negativas; repetir la misma llamada
// deja el mismo estado. No genera registro en el libro de ajustes (ese libro
// es de ingredientes); la acción queda en el historial del sistema.
func (uc *UseCase) SetPosition(ctx context.Context, input SetPositionInput) (*entity.InventoryPosition, error) {
	if input.ProductID == "" || input.Location == "" {
		return nil, fmt.Errorf("productId y location son obligatorios: %w", domain.ErrInvalidInput)
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("quantity debe ser >= 0: %w", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	userName := input.UserName
	if userName == "" {
		userName = "System"
	}

	var pos *entity.InventoryPosition
	err = uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		now := time.Now()
		pos = &entity.InventoryPosition{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			Location:  input.Location,
			Quantity:  input.Quantity,
			UpdatedAt: now,
		}
		if err := repos.Positions.Upsert(ctx, pos); err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]interface{}{
			"product_id": input.ProductID,
			"location":   input.Location,
			"quantity":   input.Quantity,
		})
		hist := &entity.SystemHistory{
			ID:        uuid.New().String(),
			Action:    "inventory_set",
			Entity:    entity.HistoryEntityInventory,
			EntityID:  input.ProductID,
			Details:   details,
			UserID:    input.UserID,
			UserName:  userName,
			CreatedAt: now,
		}
		return repos.History.Create(ctx, hist)
	})
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// History devuelve los ajustes de un ingrediente, más recientes primero,
// acotados a 100 entradas. limit <= 0 usa el máximo.
func (uc *UseCase) History(ctx context.Context, ingredientID string, limit int) ([]*entity.StockAdjustment, error) {
	if ingredientID == "" {
		return nil, domain.ErrInvalidInput
	}
	ing, err := uc.ingredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 || limit > historyMaxLimit {
		limit = historyMaxLimit
	}
	return uc.adjustmentRepo.ListByIngredient(ctx, ingredientID, limit)
}

// List devuelve ajustes filtrados por ingrediente, tipo, usuario y rango de
// fechas, más recientes primero, con el total sin paginar.
func (uc *UseCase) List(ctx context.Context, f repository.AdjustmentFilter) ([]*entity.StockAdjustment, int, error) {
	if f.Type != "" && !entity.IsValidAdjustmentType(f.Type) {
		return nil, 0, fmt.Errorf("type %q: %w", f.Type, domain.ErrInvalidInput)
	}
	if f.Limit <= 0 {
		f.Limit = listDefaultSize
	}
	if f.Limit > historyMaxLimit {
		f.Limit = historyMaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return uc.adjustmentRepo.List(ctx, f)
}

// SummaryResult agregados del libro más los ajustes recientes.
type SummaryResult struct {
	Summary *repository.AdjustmentSummary
	Recent  []*entity.StockAdjustment
}

// Summary calcula los agregados del libro de ajustes en la ventana [from, to]
// y adjunta los 10 ajustes más recientes (siempre globales, sin ventana).
func (uc *UseCase) Summary(ctx context.Context, from, to *time.Time) (*SummaryResult, error) {
	sum, err := uc.adjustmentRepo.Summary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	recent, err := uc.adjustmentRepo.Recent(ctx, recentCount)
	if err != nil {
		return nil, err
	}
	return &SummaryResult{Summary: sum, Recent: recent}, nil
}
