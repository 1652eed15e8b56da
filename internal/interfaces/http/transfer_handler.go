package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/transfers"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// TransferHandler traslados de producto entre ubicaciones.
type TransferHandler struct {
	uc    *transfers.UseCase
	log   *logger.Logger
	debug bool
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfers.UseCase, log *logger.Logger, debug bool) *TransferHandler {
	return &TransferHandler{uc: uc, log: log, debug: debug}
}

// Create godoc
// @Summary      Solicitar traslado
// @Description  Crea el traslado en pending. El inventario se mueve al completarlo.
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Traslado"
// @Success      201   {object}  dto.TransferResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if !validateBody(c, &in) {
		return nil
	}
	t, err := h.uc.Create(c.Context(), transfers.CreateInput{
		ProductID:    in.ProductID,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Quantity:     in.Quantity,
		RequestedBy:  in.RequestedBy,
	})
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToTransferResponse(t))
}

// List lista los traslados.
func (h *TransferHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.ToTransferResponses(list))
}

// Get devuelve un traslado por ID.
func (h *TransferHandler) Get(c *fiber.Ctx) error {
	t, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.ToTransferResponse(t))
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un traslado
// @Description  Al pasar a completed mueve el inventario de origen a destino (acotado en cero en el origen).
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del traslado"
// @Param        body  body  dto.UpdateTransferStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.TransferResponse
// @Failure      409   {object}  dto.ErrorResponse  "Estado terminal"
// @Router       /api/transfers/{id}/status [patch]
func (h *TransferHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTransferStatusRequest
	if !validateBody(c, &in) {
		return nil
	}
	t, err := h.uc.UpdateStatus(c.Context(), transfers.UpdateStatusInput{
		TransferID:        c.Params("id"),
		Status:            in.Status,
		QuantityReceived:  in.QuantityReceived,
		ReceivedBy:        in.ReceivedBy,
		DiscrepancyReason: in.DiscrepancyReason,
		UserID:            GetUserID(c),
	})
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.ToTransferResponse(t))
}
