package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-clientes/internal/application/cliente"
	"github.com/jhoicas/crm-clientes/internal/application/dto"
	"github.com/jhoicas/crm-clientes/internal/domain"
	"github.com/jhoicas/crm-clientes/internal/state"
)

// ClienteHandler maneja consulta y mantenimiento de clientes.
type ClienteHandler struct {
	uc    *cliente.UseCase
	store *state.ClienteStore
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *cliente.UseCase, store *state.ClienteStore) *ClienteHandler {
	return &ClienteHandler{uc: uc, store: store}
}

// Buscar POST /api/clientes/buscar
func (h *ClienteHandler) Buscar(c *fiber.Ctx) error {
	var in dto.BuscarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if err := h.uc.Buscar(c.Context(), in.Identificacion, in.Nombre); err != nil {
		return h.errorDeStore(c, err)
	}
	return c.JSON(h.store.State().Clientes)
}

// Obtener GET /api/clientes/:id
func (h *ClienteHandler) Obtener(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id requerido"})
	}

	cli, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return h.errorDeStore(c, err)
	}
	return c.JSON(cli)
}

// Crear POST /api/clientes
func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.ClienteFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	errores, err := h.uc.Crear(c.Context(), in.AFormCliente())
	if errors.Is(err, domain.ErrEntradaInvalida) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidacionResponse{Code: "VALIDATION", Errores: errores})
	}
	if err != nil {
		return h.errorDeStore(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Message: cliente.MensajeCreado})
}

// Actualizar PUT /api/clientes/:id
func (h *ClienteHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id requerido"})
	}
	var in dto.ClienteFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	errores, err := h.uc.Actualizar(c.Context(), id, in.AFormCliente())
	if errors.Is(err, domain.ErrEntradaInvalida) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidacionResponse{Code: "VALIDATION", Errores: errores})
	}
	if err != nil {
		return h.errorDeStore(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: cliente.MensajeActualizado})
}

// Eliminar DELETE /api/clientes/:id?identificacion=&nombre=
// Tras borrar recarga el listado con los filtros vigentes y lo devuelve.
func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id requerido"})
	}

	err := h.uc.Eliminar(c.Context(), id, c.Query("identificacion"), c.Query("nombre"))
	if err != nil {
		return h.errorDeStore(c, err)
	}

	st := h.store.State()
	return c.JSON(fiber.Map{
		"message":  cliente.MensajeEliminado,
		"clientes": st.Clientes,
	})
}

// Intereses GET /api/intereses
func (h *ClienteHandler) Intereses(c *fiber.Ctx) error {
	if err := h.uc.CargarIntereses(c.Context()); err != nil {
		return c.Status(estadoDe(err)).JSON(dto.ErrorResponse{Code: "INTERESES", Message: "Error al cargar intereses"})
	}
	return c.JSON(h.store.State().Intereses)
}

// errorDeStore responde el error de una operación de clientes usando el
// mensaje que el caso de uso dejó en el store (backend o fallback).
func (h *ClienteHandler) errorDeStore(c *fiber.Ctx, err error) error {
	mensaje := err.Error()
	if st := h.store.State(); st.Error != nil {
		mensaje = *st.Error
	}
	return c.Status(estadoDe(err)).JSON(dto.ErrorResponse{Code: "CLIENTE", Message: mensaje})
}
