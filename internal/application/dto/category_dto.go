package dto

import (
	"time"

	"github.com/jhoicas/carnicos-api/internal/domain/entity"
)

// SaveCategoryRequest body para crear o actualizar una categoría.
type SaveCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Kind string `json:"kind" validate:"required,oneof=product ingredient"`
}

// CategoryResponse una categoría serializada.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCategoryResponse mapea la entidad al DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Kind:      c.Kind,
		CreatedAt: c.CreatedAt,
	}
}

// ToCategoryResponses mapea un slice de categorías.
func ToCategoryResponses(list []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
