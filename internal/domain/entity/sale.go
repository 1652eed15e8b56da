package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta.
const (
	SalesTypeRetail    = "retail"
	SalesTypeWholesale = "wholesale" // aplica descuento mayorista
)

// SaleItem es una línea de venta tal como viaja en el JSON de Items.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Sale representa una transacción de venta en POS. Items y Customer se
// persisten como JSON (el detalle de líneas no se normaliza, igual que
// el cliente ocasional).
type Sale struct {
	ID             string
	TransactionID  string // único, generado por el POS
	UserID         string
	StoreID        string
	Customer       json.RawMessage
	Items          json.RawMessage // []SaleItem
	Subtotal       decimal.Decimal
	GlobalDiscount decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  string
	SalesType      string // retail | wholesale
	CreatedAt      time.Time
}

// ParseItems decodifica las líneas de la venta.
func (s *Sale) ParseItems() ([]SaleItem, error) {
	var items []SaleItem
	if len(s.Items) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(s.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}
