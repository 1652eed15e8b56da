package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/auth"
	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// AuthHandler maneja login y refresco de token.
type AuthHandler struct {
	uc    *auth.UseCase
	log   *logger.Logger
	debug bool
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, log *logger.Logger, debug bool) *AuthHandler {
	return &AuthHandler{uc: uc, log: log, debug: debug}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !validateBody(c, &in) {
		return nil
	}
	token, user, err := h.uc.Login(c.Context(), in.Username, in.Password)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}

// Refresh godoc
// @Summary      Refrescar token
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token, user, err := h.uc.Refresh(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	return c.JSON(dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}
