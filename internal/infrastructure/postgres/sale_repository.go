package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, transaction_id, user_id, store_id, customer, items, subtotal, global_discount, tax, total, payment_method, sales_type, created_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var userID *string
	err := row.Scan(
		&s.ID, &s.TransactionID, &userID, &s.StoreID, &s.Customer, &s.Items,
		&s.Subtotal, &s.GlobalDiscount, &s.Tax, &s.Total, &s.PaymentMethod, &s.SalesType, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID != nil {
		s.UserID = *userID
	}
	return &s, nil
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.TransactionID, nullable(s.UserID), s.StoreID, s.Customer, s.Items,
		s.Subtotal, s.GlobalDiscount, s.Tax, s.Total, s.PaymentMethod, s.SalesType, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetByTransactionID obtiene una venta por su TransactionID único.
func (r *SaleRepo) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE transaction_id = $1`, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by transaction id: %w", err)
	}
	return s, nil
}

// List devuelve ventas dentro de la ventana [from, to], más recientes primero.
func (r *SaleRepo) List(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at < $2)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update actualiza una venta.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	query := `
		UPDATE sales
		SET customer = $2, items = $3, subtotal = $4, global_discount = $5, tax = $6, total = $7, payment_method = $8, sales_type = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Customer, s.Items, s.Subtotal, s.GlobalDiscount, s.Tax, s.Total, s.PaymentMethod, s.SalesType,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}
