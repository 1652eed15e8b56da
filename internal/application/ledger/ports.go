package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de ajustes:
// o se escriben el stock y el registro de auditoría juntos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.TxRepos) error) error
}

// Notifier publica cambios de stock a clientes conectados (WebSocket).
// Se invoca después del commit, nunca dentro de la transacción.
type Notifier interface {
	NotifyStockUpdate(ingredientID string, stock decimal.Decimal)
}
