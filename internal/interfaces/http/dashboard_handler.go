package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// DashboardHandler resumen operativo para la pantalla principal.
type DashboardHandler struct {
	uc    *usecase.DashboardUseCase
	log   *logger.Logger
	debug bool
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, log *logger.Logger, debug bool) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log, debug: debug}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Totales de catálogo, ventas del día y pendientes. Cacheado 30 segundos.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}
