package entity

import "time"

// Estados de un traslado entre ubicaciones.
const (
	TransferStatusPending   = "pending"
	TransferStatusInTransit = "in-transit"
	TransferStatusCompleted = "completed"
	TransferStatusCancelled = "cancelled"
	TransferStatusRejected  = "rejected"
)

// IsValidTransferStatus reporta si s es un estado de traslado conocido.
func IsValidTransferStatus(s string) bool {
	switch s {
	case TransferStatusPending, TransferStatusInTransit, TransferStatusCompleted,
		TransferStatusCancelled, TransferStatusRejected:
		return true
	}
	return false
}

// Transfer representa un traslado de producto terminado entre ubicaciones.
// El inventario solo se mueve cuando el estado pasa a completed.
type Transfer struct {
	ID                string
	ProductID         string
	FromLocation      string
	ToLocation        string
	Quantity          int
	QuantityReceived  *int // nil hasta recepción
	Status            string
	RequestedBy       string
	ReceivedBy        string
	ReceivedAt        *time.Time
	DiscrepancyReason string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
