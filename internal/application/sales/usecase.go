package sales

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

// Notifier publica cambios de posiciones de inventario a clientes conectados.
// Se invoca después del commit, nunca dentro de la transacción.
type Notifier interface {
	NotifyPositionUpdate(productID, location string, quantity int)
}

// UseCase ventas POS: registra la venta y descuenta el inventario de la
// tienda en la misma transacción.
type UseCase struct {
	txRunner     ledger.TxRunner
	saleRepo     repository.SaleRepository
	storeRepo    repository.StoreRepository
	discountRepo repository.DiscountSettingRepository
	notifier     Notifier
}

// NewUseCase construye el caso de uso. notifier puede ser nil.
func NewUseCase(
	txRunner ledger.TxRunner,
	saleRepo repository.SaleRepository,
	storeRepo repository.StoreRepository,
	discountRepo repository.DiscountSettingRepository,
	notifier Notifier,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		storeRepo:    storeRepo,
		discountRepo: discountRepo,
		notifier:     notifier,
	}
}

// CreateInput entrada para registrar una venta.
type CreateInput struct {
	TransactionID  string
	UserID         string
	StoreID        string
	Customer       json.RawMessage
	Items          []entity.SaleItem
	GlobalDiscount decimal.Decimal
	Tax            decimal.Decimal
	PaymentMethod  string
	SalesType      string
	UserName       string
}

// Create registra la venta: calcula subtotal y descuento mayorista, y en una
// transacción crea la venta y descuenta cada línea del inventario de la
// tienda (acotado en cero, con bloqueo de fila por posición). TransactionID
// repetido devuelve ErrDuplicate.
func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*entity.Sale, error) {
	if input.TransactionID == "" || input.StoreID == "" || len(input.Items) == 0 {
		return nil, fmt.Errorf("transactionId, storeId e items son obligatorios: %w", domain.ErrInvalidInput)
	}

	store, err := uc.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.saleRepo.GetByTransactionID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	subtotal := decimal.Zero
	units := 0
	for i := range input.Items {
		item := &input.Items[i]
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, fmt.Errorf("línea de venta inválida: %w", domain.ErrInvalidInput)
		}
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(item.Subtotal)
		units += item.Quantity
	}

	salesType := input.SalesType
	if salesType == "" {
		salesType = entity.SalesTypeRetail
	}

	discount := input.GlobalDiscount
	if salesType == entity.SalesTypeWholesale {
		setting, err := uc.discountRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		discount = discount.Add(setting.DiscountFor(units, subtotal))
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	itemsJSON, err := json.Marshal(input.Items)
	if err != nil {
		return nil, fmt.Errorf("serializando líneas: %w", err)
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:             uuid.New().String(),
		TransactionID:  input.TransactionID,
		UserID:         input.UserID,
		StoreID:        input.StoreID,
		Customer:       input.Customer,
		Items:          itemsJSON,
		Subtotal:       subtotal,
		GlobalDiscount: discount,
		Tax:            input.Tax,
		Total:          subtotal.Sub(discount).Add(input.Tax),
		PaymentMethod:  input.PaymentMethod,
		SalesType:      salesType,
		CreatedAt:      now,
	}

	userName := input.UserName
	if userName == "" {
		userName = "System"
	}

	var touched []*entity.InventoryPosition
	err = uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Sales.Create(ctx, sale); err != nil {
			return err
		}
		// Descuenta cada línea del inventario de la tienda.
		for _, item := range input.Items {
			pos, err := repos.Positions.GetForUpdate(ctx, item.ProductID, store.Name)
			if err != nil {
				return err
			}
			next := pos.Quantity - item.Quantity
			if next < 0 {
				next = 0
			}
			pos.Quantity = next
			pos.UpdatedAt = now
			if pos.ID == "" {
				pos.ID = uuid.New().String()
			}
			if err := repos.Positions.Upsert(ctx, pos); err != nil {
				return err
			}
			touched = append(touched, pos)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"transaction_id": sale.TransactionID,
			"total":          sale.Total,
			"sales_type":     sale.SalesType,
		})
		return repos.History.Create(ctx, &entity.SystemHistory{
			ID:        uuid.New().String(),
			Action:    "sale_created",
			Entity:    entity.HistoryEntitySale,
			EntityID:  sale.ID,
			Details:   details,
			UserID:    input.UserID,
			UserName:  userName,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		for _, pos := range touched {
			uc.notifier.NotifyPositionUpdate(pos.ProductID, pos.Location, pos.Quantity)
		}
	}
	return sale, nil
}

// List devuelve ventas dentro de la ventana [from, to].
func (uc *UseCase) List(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	return uc.saleRepo.List(ctx, from, to)
}

// Get devuelve una venta por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}
