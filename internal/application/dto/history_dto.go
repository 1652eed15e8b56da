package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// HistoryResponse una entrada del historial global del sistema.
type HistoryResponse struct {
	ID        string          `json:"id"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entityId,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	UserName  string          `json:"userName"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToHistoryResponse mapea la entidad al DTO.
func ToHistoryResponse(h *entity.SystemHistory) HistoryResponse {
	return HistoryResponse{
		ID:        h.ID,
		Action:    h.Action,
		Entity:    h.Entity,
		EntityID:  h.EntityID,
		Details:   h.Details,
		UserID:    h.UserID,
		UserName:  h.UserName,
		CreatedAt: h.CreatedAt,
	}
}

// ToHistoryResponses mapea un slice de entradas.
func ToHistoryResponses(list []*entity.SystemHistory) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, ToHistoryResponse(h))
	}
	return out
}
