package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// UpdateDiscountSettingRequest body para PUT /api/discount-settings.
type UpdateDiscountSettingRequest struct {
	WholesaleMinUnits        int             `json:"wholesaleMinUnits" validate:"gte=1"`
	DiscountType             string          `json:"discountType" validate:"required,oneof=percentage fixed_amount"`
	WholesaleDiscountPercent decimal.Decimal `json:"wholesaleDiscountPercent"`
	WholesaleDiscountAmount  decimal.Decimal `json:"wholesaleDiscountAmount"`
}

// DiscountSettingResponse la configuración de descuento serializada.
type DiscountSettingResponse struct {
	ID                       string          `json:"id"`
	WholesaleMinUnits        int             `json:"wholesaleMinUnits"`
	DiscountType             string          `json:"discountType"`
	WholesaleDiscountPercent decimal.Decimal `json:"wholesaleDiscountPercent"`
	WholesaleDiscountAmount  decimal.Decimal `json:"wholesaleDiscountAmount"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}

// ToDiscountSettingResponse mapea la entidad al DTO.
func ToDiscountSettingResponse(d *entity.DiscountSetting) DiscountSettingResponse {
	return DiscountSettingResponse{
		ID:                       d.ID,
		WholesaleMinUnits:        d.WholesaleMinUnits,
		DiscountType:             d.DiscountType,
		WholesaleDiscountPercent: d.WholesaleDiscountPercent,
		WholesaleDiscountAmount:  d.WholesaleDiscountAmount,
		UpdatedAt:                d.UpdatedAt,
	}
}
