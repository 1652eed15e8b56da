package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// StoreHandler CRUD de tiendas.
type StoreHandler struct {
	uc    *usecase.StoreUseCase
	log   *logger.Logger
	debug bool
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, log *logger.Logger, debug bool) *StoreHandler {
	return &StoreHandler{uc: uc, log: log, debug: debug}
}

// Create crea una tienda.
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveStoreRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista las tiendas.
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Get devuelve una tienda por ID.
func (h *StoreHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Update actualiza una tienda.
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveStoreRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Delete elimina una tienda.
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
