package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/pkg/logger"
	"github.com/jhoicas/carnicos-api/pkg/validator"
)

// validateBody parsea y valida el body. Devuelve false si ya respondió el
// error (400 body ilegible, 422 con detalle campo a campo).
func validateBody(c *fiber.Ctx, out interface{}) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if fieldErrs := validator.ValidateStruct(out); fieldErrs != nil {
		errs := make(map[string][]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			errs[fe.Field] = append(errs[fe.Field], fe.Message())
		}
		_ = c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewValidationError(errs))
		return false
	}
	return true
}

// respondError mapea errores de dominio a códigos HTTP. Los errores no
// reconocidos responden 500 con mensaje genérico salvo en modo debug.
func respondError(c *fiber.Ctx, log *logger.Logger, debug bool, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewValidationError(map[string][]string{
			"body": {err.Error()},
		}))
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida"})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	msg := "error interno"
	if debug {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}
