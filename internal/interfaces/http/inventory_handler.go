package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/ledger"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// InventoryHandler posiciones producto-ubicación del inventario terminado.
type InventoryHandler struct {
	ledger *ledger.UseCase
	query  *usecase.InventoryUseCase
	log    *logger.Logger
	debug  bool
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(l *ledger.UseCase, q *usecase.InventoryUseCase, log *logger.Logger, debug bool) *InventoryHandler {
	return &InventoryHandler{ledger: l, query: q, log: log, debug: debug}
}

// List godoc
// @Summary      Listar posiciones de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  false  "Filtrar por ubicación"
// @Success      200  {array}  dto.PositionResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List(c.Context(), c.Query("location"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Get devuelve la posición de un producto en una ubicación.
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.query.Get(c.Context(), c.Params("productId"), c.Query("location"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Fijar la cantidad de un producto en una ubicación
// @Description  Upsert idempotente: repetir la misma llamada deja el mismo estado.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetPositionRequest  true  "Posición"
// @Success      200   {object}  dto.PositionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Set(c *fiber.Ctx) error {
	var in dto.SetPositionRequest
	if !validateBody(c, &in) {
		return nil
	}
	pos, err := h.ledger.SetPosition(c.Context(), ledger.SetPositionInput{
		ProductID: in.ProductID,
		Location:  in.Location,
		Quantity:  in.Quantity,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.ToPositionResponse(pos))
}
