package repository

import (
	"context"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// DiscountSettingRepository define el puerto para la configuración de descuento
// mayorista (fila única; Get crea los valores por defecto si no existe).
type DiscountSettingRepository interface {
	Get(ctx context.Context) (*entity.DiscountSetting, error)
	Update(ctx context.Context, d *entity.DiscountSetting) error
}
