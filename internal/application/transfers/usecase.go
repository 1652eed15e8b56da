package transfers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

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

// UseCase traslados de producto terminado entre ubicaciones. El inventario
// solo se mueve cuando el traslado pasa a completed, dentro de una transacción.
type UseCase struct {
	txRunner     ledger.TxRunner
	transferRepo repository.TransferRepository
	productRepo  repository.ProductRepository
	notifier     Notifier
}

// NewUseCase construye el caso de uso. notifier puede ser nil.
func NewUseCase(
	txRunner ledger.TxRunner,
	transferRepo repository.TransferRepository,
	productRepo repository.ProductRepository,
	notifier Notifier,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		transferRepo: transferRepo,
		productRepo:  productRepo,
		notifier:     notifier,
	}
}

// CreateInput entrada para solicitar un traslado.
type CreateInput struct {
	ProductID    string
	FromLocation string
	ToLocation   string
	Quantity     int
	RequestedBy  string
}

// Create registra un traslado en estado pending. No toca el inventario.
func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*entity.Transfer, error) {
	if input.ProductID == "" || input.FromLocation == "" || input.ToLocation == "" {
		return nil, fmt.Errorf("productId, fromLocation y toLocation son obligatorios: %w", domain.ErrInvalidInput)
	}
	if input.FromLocation == input.ToLocation {
		return nil, fmt.Errorf("origen y destino no pueden ser iguales: %w", domain.ErrInvalidInput)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("quantity debe ser > 0: %w", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	transfer := &entity.Transfer{
		ID:           uuid.New().String(),
		ProductID:    input.ProductID,
		FromLocation: input.FromLocation,
		ToLocation:   input.ToLocation,
		Quantity:     input.Quantity,
		Status:       entity.TransferStatusPending,
		RequestedBy:  input.RequestedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.transferRepo.Create(ctx, transfer); err != nil {
		return nil, err
	}
	return transfer, nil
}

// UpdateStatusInput entrada para el cambio de estado.
type UpdateStatusInput struct {
	TransferID        string
	Status            string
	QuantityReceived  *int
	ReceivedBy        string
	DiscrepancyReason string
	UserID            string
	UserName          string
}

// estados desde los que ya no hay vuelta atrás
func isTerminal(status string) bool {
	switch status {
	case entity.TransferStatusCompleted, entity.TransferStatusCancelled, entity.TransferStatusRejected:
		return true
	}
	return false
}

// UpdateStatus cambia el estado del traslado. Al pasar a completed mueve el
// inventario en la misma transacción: resta del origen (acotado en cero) y
// suma al destino, creando la posición destino si no existe. La cantidad
// movida es QuantityReceived si viene, si no la solicitada.
func (uc *UseCase) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*entity.Transfer, error) {
	if !entity.IsValidTransferStatus(input.Status) {
		return nil, fmt.Errorf("status %q: %w", input.Status, domain.ErrInvalidInput)
	}
	if input.QuantityReceived != nil && *input.QuantityReceived < 0 {
		return nil, fmt.Errorf("quantityReceived debe ser >= 0: %w", domain.ErrInvalidInput)
	}

	userName := input.UserName
	if userName == "" {
		userName = "System"
	}

	var result *entity.Transfer
	var touched []*entity.InventoryPosition
	err := uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		transfer, err := repos.Transfers.GetForUpdate(ctx, input.TransferID)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if isTerminal(transfer.Status) {
			return domain.ErrInvalidTransition
		}

		now := time.Now()
		transfer.Status = input.Status
		transfer.UpdatedAt = now

		if input.Status == entity.TransferStatusCompleted {
			moved := transfer.Quantity
			if input.QuantityReceived != nil {
				moved = *input.QuantityReceived
				transfer.QuantityReceived = input.QuantityReceived
			}
			transfer.ReceivedBy = input.ReceivedBy
			transfer.ReceivedAt = &now
			transfer.DiscrepancyReason = input.DiscrepancyReason

			src, err := repos.Positions.GetForUpdate(ctx, transfer.ProductID, transfer.FromLocation)
			if err != nil {
				return err
			}
			next := src.Quantity - moved
			if next < 0 {
				next = 0
			}
			src.Quantity = next
			src.UpdatedAt = now
			if src.ID == "" {
				src.ID = uuid.New().String()
			}
			if err := repos.Positions.Upsert(ctx, src); err != nil {
				return err
			}
			touched = append(touched, src)

			dst, err := repos.Positions.GetForUpdate(ctx, transfer.ProductID, transfer.ToLocation)
			if err != nil {
				return err
			}
			dst.Quantity += moved
			dst.UpdatedAt = now
			if dst.ID == "" {
				dst.ID = uuid.New().String()
			}
			if err := repos.Positions.Upsert(ctx, dst); err != nil {
				return err
			}
			touched = append(touched, dst)
		}

		if err := repos.Transfers.Update(ctx, transfer); err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]interface{}{
			"status":        transfer.Status,
			"from_location": transfer.FromLocation,
			"to_location":   transfer.ToLocation,
			"quantity":      transfer.Quantity,
		})
		if err := repos.History.Create(ctx, &entity.SystemHistory{
			ID:        uuid.New().String(),
			Action:    "transfer_status_changed",
			Entity:    entity.HistoryEntityTransfer,
			EntityID:  transfer.ID,
			Details:   details,
			UserID:    input.UserID,
			UserName:  userName,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		result = transfer
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		for _, pos := range touched {
			uc.notifier.NotifyPositionUpdate(pos.ProductID, pos.Location, pos.Quantity)
		}
	}
	return result, nil
}

// List devuelve todos los traslados.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Transfer, error) {
	return uc.transferRepo.List(ctx)
}

// Get devuelve un traslado por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Transfer, error) {
	transfer, err := uc.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	return transfer, nil
}
