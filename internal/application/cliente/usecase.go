// Package cliente contiene los casos de uso de consulta y mantenimiento de
// clientes. Cada operación de red despacha SetLoading al empezar y cierra con
// SetClientes/SetSuccess o SetErrorCliente; el mensaje de error es el del
// backend si lo trae, si no el fijo de la operación.
package cliente

import (
	"context"
	"errors"
	"net/http"

	"github.com/jhoicas/crm-clientes/internal/domain"
	"github.com/jhoicas/crm-clientes/internal/domain/entity"
	"github.com/jhoicas/crm-clientes/internal/infrastructure/api"
	"github.com/jhoicas/crm-clientes/internal/state"
	"github.com/jhoicas/crm-clientes/internal/validation"
	"github.com/jhoicas/crm-clientes/pkg/fechas"
	"github.com/jhoicas/crm-clientes/pkg/logger"
	"github.com/jhoicas/crm-clientes/pkg/texto"
)

// Mensajes por operación cuando el backend no trae mensaje estructurado.
const (
	FallbackListado   = "Error al cargar clientes"
	FallbackBusqueda  = "Error en búsqueda"
	FallbackObtener   = "Error al cargar cliente"
	FallbackOperacion = "Error en la operación"
	FallbackEliminar  = "Error al eliminar cliente"

	MensajeCreado      = "Cliente creado correctamente"
	MensajeActualizado = "Cliente actualizado correctamente"
	MensajeEliminado   = "Cliente eliminado correctamente"
)

// ClienteAPI es lo que el caso de uso necesita del cliente del backend.
type ClienteAPI interface {
	ListarClientes(ctx context.Context, filtro api.FiltroListado) ([]entity.ClienteResumen, error)
	ObtenerCliente(ctx context.Context, id string) (*entity.Cliente, error)
	CrearCliente(ctx context.Context, datos api.CrearClienteData) error
	ActualizarCliente(ctx context.Context, datos api.ActualizarClienteData) error
	EliminarCliente(ctx context.Context, id string) error
	ListarIntereses(ctx context.Context) ([]entity.Interes, error)
}

// FormCliente datos del formulario de mantenimiento más la imagen opcional.
type FormCliente struct {
	validation.DatosClienteForm
	Imagen string
}

// UseCase casos de uso de clientes.
type UseCase struct {
	api   ClienteAPI
	store *state.ClienteStore
	auth  *state.AuthStore
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(a ClienteAPI, store *state.ClienteStore, auth *state.AuthStore, log *logger.Logger) *UseCase {
	return &UseCase{api: a, store: store, auth: auth, log: log}
}

// usuarioID devuelve el id del usuario autenticado o ErrNoAutenticado.
func (uc *UseCase) usuarioID() (string, error) {
	sesion := uc.auth.Sesion()
	if !sesion.Autenticada() {
		return "", domain.ErrNoAutenticado
	}
	return sesion.UserID, nil
}

// listado ejecuta api/Cliente/Listado con los filtros normalizados y deja el
// resultado (o el error con el fallback dado) en el store.
func (uc *UseCase) listado(ctx context.Context, identificacion, nombre, fallback string) error {
	usuarioID, err := uc.usuarioID()
	if err != nil {
		return err
	}

	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetLoading})

	filtro := api.FiltroListado{
		Identificacion: texto.NormalizarBusqueda(identificacion),
		Nombre:         texto.NormalizarBusqueda(nombre),
		UsuarioID:      usuarioID,
	}
	lista, err := uc.api.ListarClientes(ctx, filtro)
	if err != nil {
		uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetErrorCliente, Mensaje: api.Mensaje(err, fallback)})
		return err
	}
	if lista == nil {
		lista = []entity.ClienteResumen{}
	}
	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetClientes, Clientes: lista})
	return nil
}

// Listar carga el listado inicial de clientes del usuario.
func (uc *UseCase) Listar(ctx context.Context) error {
	return uc.listado(ctx, "", "", FallbackListado)
}

// Buscar ejecuta el listado con filtros de identificación y/o nombre.
func (uc *UseCase) Buscar(ctx context.Context, identificacion, nombre string) error {
	return uc.listado(ctx, identificacion, nombre, FallbackBusqueda)
}

// Obtener trae el registro completo de un cliente y lo deja seleccionado en el
// store, con las fechas normalizadas a yyyy-mm-dd para el formulario.
func (uc *UseCase) Obtener(ctx context.Context, id string) (*entity.Cliente, error) {
	if _, err := uc.usuarioID(); err != nil {
		return nil, err
	}

	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetLoading})

	cliente, err := uc.api.ObtenerCliente(ctx, id)
	if err != nil {
		uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetErrorCliente, Mensaje: api.Mensaje(err, FallbackObtener)})
		var apiErr *api.ErrorAPI
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, domain.ErrClienteNoEncontrado
		}
		return nil, err
	}
	cliente.FNacimiento = fechas.ParaInput(cliente.FNacimiento)
	cliente.FAfiliacion = fechas.ParaInput(cliente.FAfiliacion)

	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetClienteSeleccionado, Cliente: cliente})
	return cliente, nil
}

// DeseleccionarCliente limpia la selección (al salir del formulario de edición).
func (uc *UseCase) DeseleccionarCliente() {
	uc.store.Dispatch(state.ClienteAccion{Tipo: state.ClearClienteSeleccionado})
}

// Crear valida el formulario y crea el cliente. Si la validación falla
// devuelve los errores y no emite ninguna petición.
func (uc *UseCase) Crear(ctx context.Context, form FormCliente) (validation.FormErrors, error) {
	errores := validation.ValidarClienteForm(form.DatosClienteForm)
	if validation.HasErrors(errores) {
		return errores, domain.ErrEntradaInvalida
	}

	usuarioID, err := uc.usuarioID()
	if err != nil {
		return nil, err
	}

	uc.store.Dispatch(state.ClienteAccion{Tipo: state.ClearMessages})
	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetLoading})

	if err := uc.api.CrearCliente(ctx, datosCreacion(form, usuarioID)); err != nil {
		uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetErrorCliente, Mensaje: api.Mensaje(err, FallbackOperacion)})
		return nil, err
	}

	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetSuccess, Mensaje: MensajeCreado})
	uc.log.Info().Msg("cliente creado")
	return nil, nil
}

// Actualizar valida el formulario y actualiza el cliente identificado por id.
func (uc *UseCase) Actualizar(ctx context.Context, id string, form FormCliente) (validation.FormErrors, error) {
	errores := validation.ValidarClienteForm(form.DatosClienteForm)
	if validation.HasErrors(errores) {
		return errores, domain.ErrEntradaInvalida
	}

	usuarioID, err := uc.usuarioID()
	if err != nil {
		return nil, err
	}

	uc.store.Dispatch(state.ClienteAccion{Tipo: state.ClearMessages})
	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetLoading})

	datos := api.ActualizarClienteData{ID: id, CrearClienteData: datosCreacion(form, usuarioID)}
	if err := uc.api.ActualizarCliente(ctx, datos); err != nil {
		uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetErrorCliente, Mensaje: api.Mensaje(err, FallbackOperacion)})
		return nil, err
	}

	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetSuccess, Mensaje: MensajeActualizado})
	uc.log.Info().Str("clienteId", id).Msg("cliente actualizado")
	return nil, nil
}

// Eliminar borra el cliente y recarga el listado con los filtros vigentes,
// conservando el mensaje de éxito del borrado.
func (uc *UseCase) Eliminar(ctx context.Context, id, identificacion, nombre string) error {
	usuarioID, err := uc.usuarioID()
	if err != nil {
		return err
	}

	if err := uc.api.EliminarCliente(ctx, id); err != nil {
		uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetErrorCliente, Mensaje: api.Mensaje(err, FallbackEliminar)})
		return err
	}
	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetSuccess, Mensaje: MensajeEliminado})
	uc.log.Info().Str("clienteId", id).Msg("cliente eliminado")

	filtro := api.FiltroListado{
		Identificacion: texto.NormalizarBusqueda(identificacion),
		Nombre:         texto.NormalizarBusqueda(nombre),
		UsuarioID:      usuarioID,
	}
	lista, err := uc.api.ListarClientes(ctx, filtro)
	if err != nil {
		uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetErrorCliente, Mensaje: api.Mensaje(err, FallbackListado)})
		return err
	}
	if lista == nil {
		lista = []entity.ClienteResumen{}
	}
	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetClientes, Clientes: lista})
	return nil
}

// CargarIntereses trae la lista de referencia. Un fallo aquí no es fatal para
// la página: se registra y el selector queda vacío.
func (uc *UseCase) CargarIntereses(ctx context.Context) error {
	intereses, err := uc.api.ListarIntereses(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("error al cargar intereses")
		return err
	}
	if intereses == nil {
		intereses = []entity.Interes{}
	}
	uc.store.Dispatch(state.ClienteAccion{Tipo: state.SetIntereses, Intereses: intereses})
	return nil
}

// datosCreacion arma el payload de creación/actualización desde el formulario.
func datosCreacion(form FormCliente, usuarioID string) api.CrearClienteData {
	return api.CrearClienteData{
		Nombre:          form.Nombre,
		Apellidos:       form.Apellidos,
		Identificacion:  form.Identificacion,
		Celular:         form.Celular,
		OtroTelefono:    form.OtroTelefono,
		Direccion:       form.Direccion,
		FNacimiento:     form.FNacimiento,
		FAfiliacion:     form.FAfiliacion,
		Sexo:            form.Sexo,
		ResennaPersonal: form.ResennaPersonal,
		Imagen:          form.Imagen,
		InteresFK:       form.InteresFK,
		UsuarioID:       usuarioID,
	}
}
