package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

const adjustmentColumns = `id, ingredient_id, ingredient_name, ingredient_code, type, quantity, previous_stock, new_stock, unit, reason, user_id, user_name, ip_address, created_at`

// StockAdjustmentRepo implementación del libro de ajustes sobre PostgreSQL.
// Solo-inserción: la tabla no tiene UPDATE ni DELETE desde la aplicación.
type StockAdjustmentRepo struct {
	q Querier
}

// NewStockAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAdjustmentRepository(q Querier) *StockAdjustmentRepo {
	return &StockAdjustmentRepo{q: q}
}

func scanAdjustment(row pgx.Row) (*entity.StockAdjustment, error) {
	var a entity.StockAdjustment
	var userID, ipAddress *string
	err := row.Scan(
		&a.ID, &a.IngredientID, &a.IngredientName, &a.IngredientCode, &a.Type,
		&a.Quantity, &a.PreviousStock, &a.NewStock, &a.Unit, &a.Reason,
		&userID, &a.UserName, &ipAddress, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID != nil {
		a.UserID = *userID
	}
	if ipAddress != nil {
		a.IPAddress = *ipAddress
	}
	return &a, nil
}

// Create persiste un ajuste (siempre dentro de la tx del libro).
func (r *StockAdjustmentRepo) Create(ctx context.Context, adj *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		adj.ID, adj.IngredientID, adj.IngredientName, adj.IngredientCode, adj.Type,
		adj.Quantity, adj.PreviousStock, adj.NewStock, adj.Unit, adj.Reason,
		nullable(adj.UserID), adj.UserName, nullable(adj.IPAddress), adj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock adjustment: %w", err)
	}
	return nil
}

// ListByIngredient devuelve los ajustes de un ingrediente, más recientes primero.
func (r *StockAdjustmentRepo) ListByIngredient(ctx context.Context, ingredientID string, limit int) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM stock_adjustments
		WHERE ingredient_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, ingredientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list adjustments by ingredient: %w", err)
	}
	defer rows.Close()
	return collectAdjustments(rows)
}

// List devuelve ajustes filtrados, más recientes primero, con el total sin paginar.
func (r *StockAdjustmentRepo) List(ctx context.Context, f repository.AdjustmentFilter) ([]*entity.StockAdjustment, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return "$" + strconv.Itoa(n)
	}
	if f.IngredientID != "" {
		where += ` AND ingredient_id = ` + arg(f.IngredientID)
	}
	if f.Type != "" {
		where += ` AND type = ` + arg(f.Type)
	}
	if f.UserID != "" {
		where += ` AND user_id = ` + arg(f.UserID)
	}
	if f.From != nil {
		where += ` AND created_at >= ` + arg(*f.From)
	}
	if f.To != nil {
		where += ` AND created_at <= ` + arg(*f.To)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_adjustments`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count adjustments: %w", err)
	}

	query := `SELECT ` + adjustmentColumns + ` FROM stock_adjustments` + where +
		` ORDER BY created_at DESC LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()

	list, err := collectAdjustments(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Summary agrega el libro en la ventana [from, to] (nil = sin límite).
func (r *StockAdjustmentRepo) Summary(ctx context.Context, from, to *time.Time) (*repository.AdjustmentSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE type = 'add'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'remove'), 0),
			COUNT(*)
		FROM stock_adjustments
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)`
	var sum repository.AdjustmentSummary
	err := r.q.QueryRow(ctx, query, from, to).Scan(
		&sum.TotalAdditions, &sum.TotalRemovals, &sum.TotalAdjustments,
	)
	if err != nil {
		return nil, fmt.Errorf("adjustment summary: %w", err)
	}
	sum.NetChange = sum.TotalAdditions.Sub(sum.TotalRemovals)
	return &sum, nil
}

// Recent devuelve los últimos ajustes globales.
func (r *StockAdjustmentRepo) Recent(ctx context.Context, limit int) ([]*entity.StockAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM stock_adjustments ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent adjustments: %w", err)
	}
	defer rows.Close()
	return collectAdjustments(rows)
}

func collectAdjustments(rows pgx.Rows) ([]*entity.StockAdjustment, error) {
	var out []*entity.StockAdjustment
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
