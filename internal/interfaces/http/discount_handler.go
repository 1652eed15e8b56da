package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// DiscountHandler configuración del descuento mayorista.
type DiscountHandler struct {
	uc    *usecase.DiscountUseCase
	log   *logger.Logger
	debug bool
}

// NewDiscountHandler construye el handler.
func NewDiscountHandler(uc *usecase.DiscountUseCase, log *logger.Logger, debug bool) *DiscountHandler {
	return &DiscountHandler{uc: uc, log: log, debug: debug}
}

// Get devuelve la configuración vigente (con caché de cinco minutos).
func (h *DiscountHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar la configuración del descuento mayorista
// @Tags         discounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateDiscountSettingRequest  true  "Configuración"
// @Success      200   {object}  dto.DiscountSettingResponse
// @Router       /api/discount-settings [put]
func (h *DiscountHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDiscountSettingRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}
