package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// CategoryHandler categorías de productos e ingredientes.
type CategoryHandler struct {
	uc    *usecase.CategoryUseCase
	log   *logger.Logger
	debug bool
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger, debug bool) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log, debug: debug}
}

// Create crea una categoría. Nombre repetido dentro del mismo tipo responde 409.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveCategoryRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista categorías, filtrables por tipo (product | ingredient).
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("kind"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Delete elimina una categoría.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
