package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-clientes/internal/application/auth"
	"github.com/jhoicas/crm-clientes/internal/application/dto"
	"github.com/jhoicas/crm-clientes/internal/domain"
	"github.com/jhoicas/crm-clientes/internal/state"
)

// AuthHandler maneja las peticiones de autenticación del BFF.
type AuthHandler struct {
	uc    *auth.UseCase
	store *state.AuthStore
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, store *state.AuthStore) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	errores, err := h.uc.Login(c.Context(), in.Username, in.Password, in.RememberMe)
	if errors.Is(err, domain.ErrEntradaInvalida) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidacionResponse{Code: "VALIDATION", Errores: errores})
	}
	if err != nil {
		st := h.store.State()
		mensaje := auth.FallbackLogin
		if st.Error != nil {
			mensaje = *st.Error
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTH_FAILED", Message: mensaje})
	}

	return c.JSON(h.sesion())
}

// Registro POST /api/auth/registro
func (h *AuthHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	errores, mensaje, err := h.uc.Register(c.Context(), in.Username, in.Email, in.Password, in.ConfirmPassword)
	if errors.Is(err, domain.ErrEntradaInvalida) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidacionResponse{Code: "VALIDATION", Errores: errores})
	}
	if err != nil {
		return c.Status(estadoDe(err)).JSON(dto.ErrorResponse{Code: "REGISTER_FAILED", Message: mensaje})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Message: mensaje})
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sesion GET /api/auth/sesion
func (h *AuthHandler) Sesion(c *fiber.Ctx) error {
	return c.JSON(h.sesion())
}

// sesion arma la instantánea de sesión para la UI. El token nunca sale del BFF.
func (h *AuthHandler) sesion() dto.SesionResponse {
	st := h.store.State()
	return dto.SesionResponse{
		IsAuthenticated:    st.IsAuthenticated,
		UserID:             st.UserID,
		Username:           st.Username,
		Loading:            st.Loading,
		Error:              st.Error,
		RememberedUsername: h.uc.UsuarioRecordado(),
	}
}
