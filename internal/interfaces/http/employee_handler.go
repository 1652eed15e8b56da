package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// EmployeeHandler administración de cuentas de empleados (solo admin/manager).
type EmployeeHandler struct {
	uc    *usecase.UserUseCase
	log   *logger.Logger
	debug bool
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.UserUseCase, log *logger.Logger, debug bool) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, log: log, debug: debug}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Empleado"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse  "Username ocupado"
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los empleados.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Get devuelve un empleado por ID.
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Update actualiza un empleado. Password vacío conserva la actual.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(out)
}

// Delete elimina un empleado.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
