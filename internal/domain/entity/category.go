package entity

import "time"

// Tipos de categoría: producto terminado o materia prima.
const (
	CategoryKindProduct    = "product"
	CategoryKindIngredient = "ingredient"
)

// Category agrupa productos o ingredientes según Kind.
type Category struct {
	ID        string
	Name      string // único por Kind
	Kind      string // product | ingredient
	CreatedAt time.Time
}
