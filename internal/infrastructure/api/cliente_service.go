package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/crm-clientes/internal/domain/entity"
)

// Rutas de clientes e intereses del backend.
const (
	rutaClienteListado    = "api/Cliente/Listado"
	rutaClienteObtener    = "api/Cliente/Obtener"
	rutaClienteCrear      = "api/Cliente/Crear"
	rutaClienteActualizar = "api/Cliente/Actualizar"
	rutaClienteEliminar   = "api/Cliente/Eliminar"
	rutaInteresesListado  = "api/Intereses/Listado"
)

// FiltroListado payload de api/Cliente/Listado. Los filtros vacíos listan todo
// lo del usuario.
type FiltroListado struct {
	Identificacion string `json:"identificacion"`
	Nombre         string `json:"nombre"`
	UsuarioID      string `json:"usuarioId"`
}

// CrearClienteData payload completo de api/Cliente/Crear.
type CrearClienteData struct {
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	Identificacion  string `json:"identificacion"`
	Celular         string `json:"celular"`
	OtroTelefono    string `json:"otroTelefono"`
	Direccion       string `json:"direccion"`
	FNacimiento     string `json:"fNacimiento"`
	FAfiliacion     string `json:"fAfiliacion"`
	Sexo            string `json:"sexo"`
	ResennaPersonal string `json:"resennaPersonal"`
	Imagen          string `json:"imagen,omitempty"`
	InteresFK       string `json:"interesFK"`
	UsuarioID       string `json:"usuarioId"`
}

// ActualizarClienteData payload de api/Cliente/Actualizar: el de creación más el id.
type ActualizarClienteData struct {
	ID string `json:"id"`
	CrearClienteData
}

// ListarClientes busca clientes del usuario por identificación y/o nombre.
// Devuelve resúmenes (id, identificacion, nombre, apellidos).
func (c *Client) ListarClientes(ctx context.Context, filtro FiltroListado) ([]entity.ClienteResumen, error) {
	var out []entity.ClienteResumen
	if err := c.do(ctx, http.MethodPost, rutaClienteListado, filtro, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ObtenerCliente trae el registro completo de un cliente.
func (c *Client) ObtenerCliente(ctx context.Context, id string) (*entity.Cliente, error) {
	var out entity.Cliente
	if err := c.do(ctx, http.MethodGet, rutaClienteObtener+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CrearCliente crea un cliente nuevo. El id lo asigna el backend.
func (c *Client) CrearCliente(ctx context.Context, datos CrearClienteData) error {
	return c.do(ctx, http.MethodPost, rutaClienteCrear, datos, nil)
}

// ActualizarCliente actualiza un cliente existente.
func (c *Client) ActualizarCliente(ctx context.Context, datos ActualizarClienteData) error {
	return c.do(ctx, http.MethodPost, rutaClienteActualizar, datos, nil)
}

// EliminarCliente elimina un cliente por id.
func (c *Client) EliminarCliente(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, rutaClienteEliminar+"/"+id, nil, nil)
}

// ListarIntereses trae la lista de referencia de intereses.
func (c *Client) ListarIntereses(ctx context.Context) ([]entity.Interes, error) {
	var out []entity.Interes
	if err := c.do(ctx, http.MethodGet, rutaInteresesListado, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
