package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// HistoryHandler historial de acciones del sistema.
type HistoryHandler struct {
	uc    *usecase.HistoryUseCase
	log   *logger.Logger
	debug bool
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase, log *logger.Logger, debug bool) *HistoryHandler {
	return &HistoryHandler{uc: uc, log: log, debug: debug}
}

// List lista las entradas del historial, filtrables por entidad.
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("entity"), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// ListEntity devuelve un handler fijado a una entidad (subrutas /history/pos,
// /history/inventory, etc.).
func (h *HistoryHandler) ListEntity(entity string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.List(c.Context(), entity, c.QueryInt("limit", 50))
		if err != nil {
			return respondError(c, h.log, h.debug, err)
		}
		return c.JSON(out)
	}
}
