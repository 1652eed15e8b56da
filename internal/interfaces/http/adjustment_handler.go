package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/ledger"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// AdjustmentHandler maneja el libro de ajustes de stock (protegido).
type AdjustmentHandler struct {
	uc    *ledger.UseCase
	log   *logger.Logger
	debug bool
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *ledger.UseCase, log *logger.Logger, debug bool) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc, log: log, debug: debug}
}

// Create godoc
// @Summary      Registrar ajuste de stock
// @Tags         stock-adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Datos del ajuste"
// @Success      201   {object}  dto.AdjustStockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/stock-adjustments [post]
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if !validateBody(c, &in) {
		return nil
	}

	userID := GetUserID(c)
	if userID == "" {
		userID = in.UserID
	}

	adj, ing, err := h.uc.Adjust(c.Context(), ledger.AdjustInput{
		IngredientID: in.IngredientID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
		UserID:       userID,
		UserName:     in.UserName,
		IPAddress:    c.IP(),
	})
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}

	resp := dto.AdjustStockResponse{
		Success:    true,
		Message:    "Stock adjusted successfully",
		Adjustment: dto.ToAdjustmentResponse(adj),
	}
	resp.Ingredient.ID = ing.ID
	resp.Ingredient.Name = ing.Name
	resp.Ingredient.Stock = ing.Stock
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar ajustes de stock
// @Tags         stock-adjustments
// @Security     Bearer
// @Produce      json
// @Param        ingredient_id  query  string  false  "Filtrar por ingrediente"
// @Param        type           query  string  false  "add | remove"
// @Param        user_id        query  string  false  "Filtrar por usuario"
// @Param        from_date      query  string  false  "Fecha inicial (RFC3339 o 2006-01-02)"
// @Param        to_date        query  string  false  "Fecha final"
// @Param        per_page       query  int     false  "Tamaño de página"  default(50)
// @Param        offset         query  int     false  "Offset"            default(0)
// @Success      200  {object}  dto.AdjustmentListResponse
// @Router       /api/stock-adjustments [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	filter := repository.AdjustmentFilter{
		IngredientID: c.Query("ingredient_id"),
		Type:         c.Query("type"),
		UserID:       c.Query("user_id"),
		Limit:        c.QueryInt("per_page", 50),
		Offset:       c.QueryInt("offset", 0),
	}
	if from, ok := parseDate(c.Query("from_date")); ok {
		filter.From = &from
	}
	if to, ok := parseDate(c.Query("to_date")); ok {
		filter.To = &to
	}

	list, total, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}

	resp := dto.AdjustmentListResponse{
		Success:     true,
		Adjustments: dto.ToAdjustmentResponses(list),
	}
	resp.Pagination.Total = total
	resp.Pagination.PerPage = filter.Limit
	resp.Pagination.Offset = filter.Offset
	return c.JSON(resp)
}

// Summary godoc
// @Summary      Resumen del libro de ajustes
// @Tags         stock-adjustments
// @Security     Bearer
// @Produce      json
// @Param        from_date  query  string  false  "Fecha inicial"
// @Param        to_date    query  string  false  "Fecha final"
// @Success      200  {object}  dto.AdjustmentSummaryResponse
// @Router       /api/stock-adjustments/summary [get]
func (h *AdjustmentHandler) Summary(c *fiber.Ctx) error {
	var from, to *time.Time
	if f, ok := parseDate(c.Query("from_date")); ok {
		from = &f
	}
	if t, ok := parseDate(c.Query("to_date")); ok {
		to = &t
	}

	result, err := h.uc.Summary(c.Context(), from, to)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}

	resp := dto.AdjustmentSummaryResponse{Success: true}
	resp.Summary.TotalAdditions = result.Summary.TotalAdditions
	resp.Summary.TotalRemovals = result.Summary.TotalRemovals
	resp.Summary.TotalAdjustments = result.Summary.TotalAdjustments
	resp.Summary.NetChange = result.Summary.NetChange
	resp.Recent = dto.ToAdjustmentResponses(result.Recent)
	return c.JSON(resp)
}

// History godoc
// @Summary      Historial de ajustes de un ingrediente
// @Tags         stock-adjustments
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del ingrediente"
// @Param        limit  query  int     false  "Máximo de entradas (tope 100)"
// @Success      200  {object}  dto.AdjustmentListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id}/adjustments [get]
func (h *AdjustmentHandler) History(c *fiber.Ctx) error {
	list, err := h.uc.History(c.Context(), c.Params("id"), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"adjustments": dto.ToAdjustmentResponses(list),
	})
}

// parseDate acepta RFC3339 o fecha simple 2006-01-02.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
