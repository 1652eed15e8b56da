package dto

import (
	"time"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// CreateTransferRequest body para POST /api/transfers.
type CreateTransferRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	FromLocation string `json:"fromLocation" validate:"required,max=255"`
	ToLocation   string `json:"toLocation" validate:"required,max=255"`
	Quantity     int    `json:"quantity" validate:"gt=0"`
	RequestedBy  string `json:"requestedBy" validate:"omitempty,max=255"`
}

// UpdateTransferStatusRequest body para PATCH /api/transfers/:id/status.
// QuantityReceived solo aplica al pasar a completed.
type UpdateTransferStatusRequest struct {
	Status            string `json:"status" validate:"required,oneof=pending in-transit completed cancelled rejected"`
	QuantityReceived  *int   `json:"quantityReceived" validate:"omitempty,gte=0"`
	ReceivedBy        string `json:"receivedBy" validate:"omitempty,max=255"`
	DiscrepancyReason string `json:"discrepancyReason" validate:"omitempty,max=1000"`
}

// TransferResponse un traslado serializado.
type TransferResponse struct {
	ID                string     `json:"id"`
	ProductID         string     `json:"productId"`
	FromLocation      string     `json:"fromLocation"`
	ToLocation        string     `json:"toLocation"`
	Quantity          int        `json:"quantity"`
	QuantityReceived  *int       `json:"quantityReceived,omitempty"`
	Status            string     `json:"status"`
	RequestedBy       string     `json:"requestedBy,omitempty"`
	ReceivedBy        string     `json:"receivedBy,omitempty"`
	ReceivedAt        *time.Time `json:"receivedAt,omitempty"`
	DiscrepancyReason string     `json:"discrepancyReason,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// ToTransferResponse mapea la entidad al DTO.
func ToTransferResponse(t *entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:                t.ID,
		ProductID:         t.ProductID,
		FromLocation:      t.FromLocation,
		ToLocation:        t.ToLocation,
		Quantity:          t.Quantity,
		QuantityReceived:  t.QuantityReceived,
		Status:            t.Status,
		RequestedBy:       t.RequestedBy,
		ReceivedBy:        t.ReceivedBy,
		ReceivedAt:        t.ReceivedAt,
		DiscrepancyReason: t.DiscrepancyReason,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToTransferResponses mapea un slice de traslados.
func ToTransferResponses(list []*entity.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTransferResponse(t))
	}
	return out
}
