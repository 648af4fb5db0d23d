package dto

import (
	"github.com/jhoicas/crm-clientes/internal/application/cliente"
	"github.com/jhoicas/crm-clientes/internal/validation"
)

// BuscarRequest filtros del listado de clientes.
type BuscarRequest struct {
	Identificacion string `json:"identificacion"`
	Nombre         string `json:"nombre"`
}

// ClienteFormRequest formulario de creación/edición de cliente.
// Los nombres de campo replican los del backend (incluida la doble n de
// resennaPersonal en el payload de escritura).
type ClienteFormRequest struct {
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
	Imagen          string `json:"imagen"`
	InteresFK       string `json:"interesFK"`
}

// AFormCliente convierte la request al formulario del caso de uso.
func (r ClienteFormRequest) AFormCliente() cliente.FormCliente {
	return cliente.FormCliente{
		DatosClienteForm: validation.DatosClienteForm{
			Nombre:          r.Nombre,
			Apellidos:       r.Apellidos,
			Identificacion:  r.Identificacion,
			Celular:         r.Celular,
			OtroTelefono:    r.OtroTelefono,
			Direccion:       r.Direccion,
			FNacimiento:     r.FNacimiento,
			FAfiliacion:     r.FAfiliacion,
			Sexo:            r.Sexo,
			ResennaPersonal: r.ResennaPersonal,
			InteresFK:       r.InteresFK,
		},
		Imagen: r.Imagen,
	}
}
