package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// ProductHandler CRUD del catálogo de productos terminados.
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	log   *logger.Logger
	debug bool
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger, debug bool) *ProductHandler {
	return &ProductHandler{uc: uc, log: log, debug: debug}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveProductRequest  true  "Producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista productos, con filtro de búsqueda opcional.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Get devuelve un producto por ID.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Update actualiza un producto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAll vacía el catálogo (solo admin, lo usa la pantalla de reset).
func (h *ProductHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.uc.DeleteAll(c.Context()); err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
