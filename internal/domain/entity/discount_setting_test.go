package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

func pct(min int, percent float64) *entity.DiscountSetting {
	return &entity.DiscountSetting{
		WholesaleMinUnits:        min,
		DiscountType:             entity.DiscountTypePercentage,
		WholesaleDiscountPercent: decimal.NewFromFloat(percent),
	}
}

func TestDiscountFor_NoAlcanzaElMinimo(t *testing.T) {
	d := pct(5, 10)
	got := d.DiscountFor(4, decimal.NewFromInt(100))
	assert.True(t, got.IsZero(), "por debajo del mínimo mayorista no hay descuento")
}

func TestDiscountFor_PorcentajeSobreSubtotal(t *testing.T) {
	d := pct(5, 10)
	got := d.DiscountFor(5, decimal.NewFromInt(200))
	assert.True(t, got.Equal(decimal.NewFromInt(20)), "10%% de 200 debe ser 20, fue %s", got)
}

func TestDiscountFor_MontoFijo(t *testing.T) {
	d := &entity.DiscountSetting{
		WholesaleMinUnits:       3,
		DiscountType:            entity.DiscountTypeFixedAmount,
		WholesaleDiscountAmount: decimal.NewFromInt(15),
	}
	got := d.DiscountFor(3, decimal.NewFromInt(100))
	assert.True(t, got.Equal(decimal.NewFromInt(15)))
}

func TestDiscountFor_NuncaSuperaElSubtotal(t *testing.T) {
	d := &entity.DiscountSetting{
		WholesaleMinUnits:       1,
		DiscountType:            entity.DiscountTypeFixedAmount,
		WholesaleDiscountAmount: decimal.NewFromInt(500),
	}
	got := d.DiscountFor(10, decimal.NewFromInt(80))
	assert.True(t, got.Equal(decimal.NewFromInt(80)), "el descuento se acota al subtotal")
}

func TestDiscountFor_SubtotalCeroONegativo(t *testing.T) {
	d := pct(1, 10)
	assert.True(t, d.DiscountFor(10, decimal.Zero).IsZero())
	assert.True(t, d.DiscountFor(10, decimal.NewFromInt(-5)).IsZero())
}
