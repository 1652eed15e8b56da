package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// CreateSaleRequest body para POST /api/sales. Items viaja como el arreglo
// de líneas que arma el POS; Customer es JSON libre (cliente ocasional).
type CreateSaleRequest struct {
	TransactionID  string            `json:"transactionId" validate:"required,max=64"`
	StoreID        string            `json:"storeId" validate:"required"`
	Customer       json.RawMessage   `json:"customer"`
	Items          []entity.SaleItem `json:"items" validate:"required,min=1,dive"`
	GlobalDiscount decimal.Decimal   `json:"globalDiscount"`
	Tax            decimal.Decimal   `json:"tax"`
	PaymentMethod  string            `json:"paymentMethod" validate:"omitempty,max=32"`
	SalesType      string            `json:"salesType" validate:"omitempty,oneof=retail wholesale"`
}

// SaleResponse una venta serializada.
type SaleResponse struct {
	ID             string          `json:"id"`
	TransactionID  string          `json:"transactionId"`
	UserID         string          `json:"userId,omitempty"`
	StoreID        string          `json:"storeId"`
	Customer       json.RawMessage `json:"customer,omitempty"`
	Items          json.RawMessage `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	GlobalDiscount decimal.Decimal `json:"globalDiscount"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	SalesType      string          `json:"salesType"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToSaleResponse mapea la entidad al DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:             s.ID,
		TransactionID:  s.TransactionID,
		UserID:         s.UserID,
		StoreID:        s.StoreID,
		Customer:       s.Customer,
		Items:          s.Items,
		Subtotal:       s.Subtotal,
		GlobalDiscount: s.GlobalDiscount,
		Tax:            s.Tax,
		Total:          s.Total,
		PaymentMethod:  s.PaymentMethod,
		SalesType:      s.SalesType,
		CreatedAt:      s.CreatedAt,
	}
}

// ToSaleResponses mapea un slice de ventas.
func ToSaleResponses(list []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
