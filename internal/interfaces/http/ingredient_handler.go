package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// IngredientHandler CRUD del catálogo de materias primas.
type IngredientHandler struct {
	uc    *usecase.IngredientUseCase
	log   *logger.Logger
	debug bool
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *usecase.IngredientUseCase, log *logger.Logger, debug bool) *IngredientHandler {
	return &IngredientHandler{uc: uc, log: log, debug: debug}
}

// Create godoc
// @Summary      Crear ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredientRequest  true  "Ingrediente"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ingredientes
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre o código (ignora tildes)"
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Get devuelve un ingrediente por ID.
func (h *IngredientHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Update actualiza los datos maestros (nunca el stock).
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIngredientRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Delete elimina un ingrediente.
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset reinicia el catálogo al listado base, con stock en cero.
func (h *IngredientHandler) Reset(c *fiber.Ctx) error {
	out, err := h.uc.Reset(c.Context())
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(fiber.Map{"success": true, "ingredients": out})
}
