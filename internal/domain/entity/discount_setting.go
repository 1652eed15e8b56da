package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento mayorista.
const (
	DiscountTypePercentage  = "percentage"
	DiscountTypeFixedAmount = "fixed_amount"
)

// DiscountSetting es la configuración (fila única) del descuento mayorista:
// a partir de WholesaleMinUnits unidades se aplica el porcentaje o el monto fijo.
type DiscountSetting struct {
	ID                       string
	WholesaleMinUnits        int
	DiscountType             string // percentage | fixed_amount
	WholesaleDiscountPercent decimal.Decimal
	WholesaleDiscountAmount  decimal.Decimal
	UpdatedAt                time.Time
}

// DiscountFor calcula el descuento para una venta de units unidades con el
// subtotal dado. Cero si no alcanza el mínimo mayorista; nunca supera el subtotal.
func (d *DiscountSetting) DiscountFor(units int, subtotal decimal.Decimal) decimal.Decimal {
	if units < d.WholesaleMinUnits || subtotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	var disc decimal.Decimal
	if d.DiscountType == DiscountTypeFixedAmount {
		disc = d.WholesaleDiscountAmount
	} else {
		disc = subtotal.Mul(d.WholesaleDiscountPercent).Div(decimal.NewFromInt(100))
	}
	if disc.GreaterThan(subtotal) {
		return subtotal
	}
	if disc.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return disc
}
