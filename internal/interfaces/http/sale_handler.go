package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/sales"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// SaleHandler registro y consulta de ventas del POS.
type SaleHandler struct {
	uc    *sales.UseCase
	log   *logger.Logger
	debug bool
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.UseCase, log *logger.Logger, debug bool) *SaleHandler {
	return &SaleHandler{uc: uc, log: log, debug: debug}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Calcula descuento mayorista según configuración y descuenta el inventario de la tienda.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse  "TransactionID repetido"
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if !validateBody(c, &in) {
		return nil
	}
	sale, err := h.uc.Create(c.Context(), sales.CreateInput{
		TransactionID:  in.TransactionID,
		UserID:         GetUserID(c),
		StoreID:        in.StoreID,
		Customer:       in.Customer,
		Items:          in.Items,
		GlobalDiscount: in.GlobalDiscount,
		Tax:            in.Tax,
		PaymentMethod:  in.PaymentMethod,
		SalesType:      in.SalesType,
	})
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSaleResponse(sale))
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Fecha inicial"
// @Param        endDate    query  string  false  "Fecha final"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var from, to *time.Time
	if f, ok := parseDate(c.Query("startDate", c.Query("from_date"))); ok {
		from = &f
	}
	if t, ok := parseDate(c.Query("endDate", c.Query("to_date"))); ok {
		to = &t
	}
	list, err := h.uc.List(c.Context(), from, to)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.ToSaleResponses(list))
}

// Get devuelve una venta por ID.
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	sale, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.ToSaleResponse(sale))
}
