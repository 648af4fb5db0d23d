package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-clientes/internal/application/dto"
	"github.com/jhoicas/crm-clientes/internal/domain"
	"github.com/jhoicas/crm-clientes/internal/infrastructure/api"
	"github.com/jhoicas/crm-clientes/internal/state"
	"github.com/jhoicas/crm-clientes/pkg/token"
)

// RequireSesion protege las rutas de clientes: exige una sesión autenticada en
// el store. Si el token guardado ya expiró fuerza el logout y responde 401,
// para que la UI redirija al login en vez de acumular fallos del backend.
func RequireSesion(store *state.AuthStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ses := store.Sesion()
		if !ses.Autenticada() {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "SESION_REQUERIDA", Message: "debe iniciar sesión"})
		}
		if token.Expirado(ses.Token) {
			_ = store.Logout()
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "SESION_EXPIRADA", Message: domain.ErrSesionExpirada.Error()})
		}
		return c.Next()
	}
}

// estadoDe traduce un error de caso de uso al estado HTTP del BFF: los errores
// del backend conservan su estado original, la falta de sesión es 401 y el
// resto es 500.
func estadoDe(err error) int {
	var apiErr *api.ErrorAPI
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	if errors.Is(err, domain.ErrNoAutenticado) {
		return fiber.StatusUnauthorized
	}
	if errors.Is(err, domain.ErrClienteNoEncontrado) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}
