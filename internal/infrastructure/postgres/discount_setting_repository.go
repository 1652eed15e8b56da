package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

var _ repository.DiscountSettingRepository = (*DiscountSettingRepo)(nil)

// DiscountSettingRepo configuración del descuento mayorista (fila única).
type DiscountSettingRepo struct {
	q Querier
}

// NewDiscountSettingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDiscountSettingRepository(q Querier) *DiscountSettingRepo {
	return &DiscountSettingRepo{q: q}
}

// Get devuelve la configuración vigente. Si la fila no existe todavía crea
// los valores por defecto (mínimo 5 unidades, 1% porcentual).
func (r *DiscountSettingRepo) Get(ctx context.Context) (*entity.DiscountSetting, error) {
	query := `
		SELECT id, wholesale_min_units, discount_type, wholesale_discount_percent, wholesale_discount_amount, updated_at
		FROM discount_settings
		LIMIT 1`
	var d entity.DiscountSetting
	err := r.q.QueryRow(ctx, query).Scan(
		&d.ID, &d.WholesaleMinUnits, &d.DiscountType,
		&d.WholesaleDiscountPercent, &d.WholesaleDiscountAmount, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.createDefaults(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get discount settings: %w", err)
	}
	return &d, nil
}

func (r *DiscountSettingRepo) createDefaults(ctx context.Context) (*entity.DiscountSetting, error) {
	d := &entity.DiscountSetting{
		ID:                       uuid.New().String(),
		WholesaleMinUnits:        5,
		DiscountType:             entity.DiscountTypePercentage,
		WholesaleDiscountPercent: decimal.NewFromInt(1),
		WholesaleDiscountAmount:  decimal.Zero,
		UpdatedAt:                time.Now(),
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO discount_settings (id, wholesale_min_units, discount_type, wholesale_discount_percent, wholesale_discount_amount, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.WholesaleMinUnits, d.DiscountType, d.WholesaleDiscountPercent, d.WholesaleDiscountAmount, d.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert default discount settings: %w", err)
	}
	return d, nil
}

// Update guarda la configuración.
func (r *DiscountSettingRepo) Update(ctx context.Context, d *entity.DiscountSetting) error {
	query := `
		UPDATE discount_settings
		SET wholesale_min_units = $2, discount_type = $3, wholesale_discount_percent = $4, wholesale_discount_amount = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.WholesaleMinUnits, d.DiscountType, d.WholesaleDiscountPercent, d.WholesaleDiscountAmount, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update discount settings: %w", err)
	}
	return nil
}
