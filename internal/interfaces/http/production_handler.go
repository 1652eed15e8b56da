package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/production"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// ProductionHandler lotes de producción de la planta.
type ProductionHandler struct {
	uc    *production.UseCase
	log   *logger.Logger
	debug bool
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase, log *logger.Logger, debug bool) *ProductionHandler {
	return &ProductionHandler{uc: uc, log: log, debug: debug}
}

// Create godoc
// @Summary      Registrar lote de producción
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "Lote"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      409   {object}  dto.ErrorResponse  "BatchNumber repetido"
// @Router       /api/production [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if !validateBody(c, &in) {
		return nil
	}
	ings := make([]production.IngredientInput, 0, len(in.Ingredients))
	for _, i := range in.Ingredients {
		ings = append(ings, production.IngredientInput{IngredientID: i.IngredientID, Quantity: i.Quantity})
	}
	rec, err := h.uc.Create(c.Context(), production.CreateInput{
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		BatchNumber: in.BatchNumber,
		Operator:    in.Operator,
		Status:      in.Status,
		Ingredients: ings,
		UserID:      GetUserID(c),
	})
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductionResponse(rec))
}

// List lista los lotes de producción.
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.ToProductionResponses(list))
}

// Get devuelve un lote por ID.
func (h *ProductionHandler) Get(c *fiber.Ctx) error {
	rec, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.ToProductionResponse(rec))
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un lote
// @Description  completed es terminal; al completar se sincroniza el inventario de planta.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                             true  "ID del lote"
// @Param        body  body  dto.UpdateProductionStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ProductionResponse
// @Failure      409   {object}  dto.ErrorResponse  "Transición inválida"
// @Router       /api/production/{id}/status [patch]
func (h *ProductionHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateProductionStatusRequest
	if !validateBody(c, &in) {
		return nil
	}
	rec, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status, GetUserID(c), "")
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.ToProductionResponse(rec))
}

// Delete elimina un lote; si estaba completed recalcula el inventario de planta.
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c), ""); err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
