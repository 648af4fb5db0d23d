package entity

// Cliente registro completo de un cliente, tal como lo entrega api/Cliente/Obtener.
// El id lo asigna siempre el backend; el cliente nunca lo genera.
type Cliente struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	Identificacion  string `json:"identificacion"`
	TelefonoCelular string `json:"telefonoCelular"`
	OtroTelefono    string `json:"otroTelefono,omitempty"`
	Direccion       string `json:"direccion"`
	FNacimiento     string `json:"fNacimiento"` // yyyy-mm-dd o RFC3339 según el backend
	FAfiliacion     string `json:"fAfiliacion"`
	Sexo            string `json:"sexo"` // "M" | "F"
	ResenaPersonal  string `json:"resenaPersonal"`
	Imagen          string `json:"imagen,omitempty"` // binario como texto (data URL)
	InteresesID     string `json:"interesesId"`
}

// ClienteResumen proyección reducida usada en el listado (api/Cliente/Listado).
type ClienteResumen struct {
	ID             string `json:"id"`
	Identificacion string `json:"identificacion"`
	Nombre         string `json:"nombre"`
	Apellidos      string `json:"apellidos"`
}

// Interes categoría de referencia asociable a un cliente. Solo lectura.
type Interes struct {
	ID          string `json:"id"`
	Descripcion string `json:"descripcion"`
}
