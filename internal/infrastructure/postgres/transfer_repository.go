package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

const transferColumns = `id, product_id, from_location, to_location, quantity, quantity_received, status, requested_by, received_by, received_at, discrepancy_reason, created_at, updated_at`

// TransferRepo traslados entre ubicaciones sobre PostgreSQL.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

func scanTransfer(row pgx.Row) (*entity.Transfer, error) {
	var t entity.Transfer
	err := row.Scan(
		&t.ID, &t.ProductID, &t.FromLocation, &t.ToLocation, &t.Quantity,
		&t.QuantityReceived, &t.Status, &t.RequestedBy, &t.ReceivedBy,
		&t.ReceivedAt, &t.DiscrepancyReason, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un traslado.
func (r *TransferRepo) Create(ctx context.Context, t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ProductID, t.FromLocation, t.ToLocation, t.Quantity,
		t.QuantityReceived, t.Status, t.RequestedBy, t.ReceivedBy,
		t.ReceivedAt, t.DiscrepancyReason, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID.
func (r *TransferRepo) GetByID(ctx context.Context, id string) (*entity.Transfer, error) {
	t, err := scanTransfer(r.q.QueryRow(ctx, `SELECT `+transferColumns+` FROM transfers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

// GetForUpdate bloquea la fila del traslado durante el cambio de estado.
func (r *TransferRepo) GetForUpdate(ctx context.Context, id string) (*entity.Transfer, error) {
	t, err := scanTransfer(r.q.QueryRow(ctx, `SELECT `+transferColumns+` FROM transfers WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock transfer: %w", err)
	}
	return t, nil
}

// List devuelve todos los traslados, más recientes primero.
func (r *TransferRepo) List(ctx context.Context) ([]*entity.Transfer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+transferColumns+` FROM transfers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update actualiza un traslado.
func (r *TransferRepo) Update(ctx context.Context, t *entity.Transfer) error {
	query := `
		UPDATE transfers
		SET status = $2, quantity_received = $3, received_by = $4, received_at = $5, discrepancy_reason = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Status, t.QuantityReceived, t.ReceivedBy, t.ReceivedAt, t.DiscrepancyReason, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}
