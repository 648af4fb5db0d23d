// Package http expone la superficie HTTP local (BFF) del CRM: los endpoints
// que la UI consume. Cada handler valida el formulario antes de tocar el
// backend y lee el resultado desde los stores.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-clientes/internal/state"
)

// RouterDeps dependencias del router.
type RouterDeps struct {
	Auth      *AuthHandler
	Cliente   *ClienteHandler
	AuthStore *state.AuthStore
}

// Router registra todas las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas públicas: login y registro.
	authGroup := api.Group("/auth")
	authGroup.Post("/login", deps.Auth.Login)
	authGroup.Post("/registro", deps.Auth.Registro)
	authGroup.Post("/logout", deps.Auth.Logout)
	authGroup.Get("/sesion", deps.Auth.Sesion)

	// Rutas protegidas: requieren sesión vigente.
	guard := RequireSesion(deps.AuthStore)

	clientes := api.Group("/clientes", guard)
	clientes.Post("/buscar", deps.Cliente.Buscar)
	clientes.Post("/", deps.Cliente.Crear)
	clientes.Get("/:id", deps.Cliente.Obtener)
	clientes.Put("/:id", deps.Cliente.Actualizar)
	clientes.Delete("/:id", deps.Cliente.Eliminar)

	api.Get("/intereses", guard, deps.Cliente.Intereses)
}
